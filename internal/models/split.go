package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/split-star/backend/internal/split"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxMutateAttempts is how often MutateSplit retries on a version conflict.
const maxMutateAttempts = 3

// Split is the database row of a split.
type Split struct {
	DefaultModel
	GroupID       string          `gorm:"index"`
	Description   string          `gorm:"type:text"`
	Currency      string          `gorm:"size:3"`
	PaidBy        string          `gorm:"type:text"`
	BaseAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TaxPercentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TaxAmount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Method        split.Method
	Status        split.Status `gorm:"index"`
	SettledAt     *time.Time
	CancelledAt   *time.Time
	Version       uint `gorm:"not null;default:1"`

	Allocations []Allocation `gorm:"constraint:OnDelete:CASCADE"`
	Activities  []Activity   `gorm:"constraint:OnDelete:CASCADE"`
}

// Allocation is the share of a single member in a split.
type Allocation struct {
	DefaultModel
	SplitID       uuid.UUID `gorm:"type:uuid;uniqueIndex:allocation_split_member"`
	MemberID      string    `gorm:"uniqueIndex:allocation_split_member"`
	Position      int
	MemberName    string
	Participating bool

	// Only the column matching the method of the split is used
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Percentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Shares     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	Owed          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Paid          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaymentStatus split.PaymentStatus
	PaidAt        *time.Time
}

// Activity is one entry in the activity log of a split.
type Activity struct {
	DefaultModel
	SplitID     uuid.UUID `gorm:"type:uuid;index"`
	Position    int
	Type        split.ActivityType
	At          time.Time
	Actor       string
	MemberID    string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string          `gorm:"type:text"`
}

// SplitFilter selects splits in ListSplits. Zero values do not filter.
type SplitFilter struct {
	GroupID    string
	MemberID   string       // Splits the member has an allocation in
	MemberName string       // Glob pattern matched against the names of all members
	Status     split.Status // Status of the split
	Method     split.Method // Method of the split
	Offset     uint
	Limit      int // Negative values disable the limit
}

// CreateSplit persists a new split and returns it as stored.
func CreateSplit(db *gorm.DB, s split.Split) (split.Split, error) {
	m, err := fromDomain(s)
	if err != nil {
		return split.Split{}, err
	}

	m.ID = uuid.New()
	m.Version = 1

	err = db.Create(&m).Error
	if err != nil {
		return split.Split{}, err
	}

	return LoadSplit(db, m.ID)
}

// LoadSplit reads a split with its allocations and activity log.
func LoadSplit(db *gorm.DB, id uuid.UUID) (split.Split, error) {
	var m Split
	err := db.
		Preload("Allocations", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&m, "id = ?", id).Error
	if err != nil {
		return split.Split{}, err
	}

	return m.toDomain()
}

// SaveSplit replaces the stored state of the split with s.
//
// The write only succeeds if the stored version equals s.Version,
// ErrSplitVersionConflict is returned otherwise.
func SaveSplit(db *gorm.DB, s split.Split) (split.Split, error) {
	m, err := fromDomain(s)
	if err != nil {
		return split.Split{}, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		m.Version = s.Version + 1

		res := tx.Model(&m).
			Omit(clause.Associations).
			Select("GroupID", "Description", "Currency", "PaidBy", "BaseAmount", "TaxPercentage", "TaxAmount", "TotalAmount", "Method", "Status", "SettledAt", "CancelledAt", "Version", "UpdatedAt").
			Where("version = ?", s.Version).
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			var count int64
			err := tx.Model(&Split{}).Where("id = ?", m.ID).Count(&count).Error
			if err != nil {
				return err
			}

			if count == 0 {
				return fmt.Errorf("%w split matching your query", ErrResourceNotFound)
			}
			return ErrSplitVersionConflict
		}

		// Allocations are replaced in full on every save
		err := tx.Unscoped().Where("split_id = ?", m.ID).Delete(&Allocation{}).Error
		if err != nil {
			return err
		}

		if len(m.Allocations) > 0 {
			err = tx.Create(&m.Allocations).Error
			if err != nil {
				return err
			}
		}

		// The activity log is append-only, only new entries are written
		var stored int64
		err = tx.Model(&Activity{}).Where("split_id = ?", m.ID).Count(&stored).Error
		if err != nil {
			return err
		}

		if int(stored) < len(m.Activities) {
			added := m.Activities[stored:]
			err = tx.Create(&added).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return split.Split{}, err
	}

	return LoadSplit(db, m.ID)
}

// MutateSplit loads the split, applies fn and saves the result.
//
// When another request saved the split in between, the whole cycle is
// repeated with the fresh state.
func MutateSplit(db *gorm.DB, id uuid.UUID, fn func(split.Split) (split.Split, error)) (split.Split, error) {
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		s, err := LoadSplit(db, id)
		if err != nil {
			return split.Split{}, err
		}

		s, err = fn(s)
		if err != nil {
			return split.Split{}, err
		}

		saved, err := SaveSplit(db, s)
		if errors.Is(err, ErrSplitVersionConflict) {
			continue
		}

		return saved, err
	}

	return split.Split{}, ErrSplitVersionConflict
}

// ListSplits returns the splits matching the filter, newest first, and the
// total number of matches before pagination.
//
// Without a member name pattern, pagination happens in the query. The glob
// cannot be expressed in SQL, so with a pattern all candidates are loaded and
// paginated after matching.
func ListSplits(db *gorm.DB, f SplitFilter) ([]split.Split, int64, error) {
	q := db.Model(&Split{})

	if f.GroupID != "" {
		q = q.Where("splits.group_id = ?", f.GroupID)
	}

	if f.Status != "" {
		q = q.Where("splits.status = ?", f.Status)
	}

	if f.Method != "" {
		q = q.Where("splits.method = ?", f.Method)
	}

	if f.MemberID != "" {
		q = q.Where("EXISTS (SELECT 1 FROM allocations WHERE allocations.split_id = splits.id AND allocations.member_id = ? AND allocations.deleted_at IS NULL)", f.MemberID)
	}

	// Count and Find both build on the conditions above
	q = q.Session(&gorm.Session{})

	var total int64
	if f.MemberName == "" {
		err := q.Count(&total).Error
		if err != nil {
			return nil, 0, err
		}

		if int64(f.Offset) >= total {
			return []split.Split{}, total, nil
		}
	}

	find := q.
		Order("splits.created_at DESC, splits.id").
		Preload("Allocations", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("position") })

	if f.MemberName == "" {
		find = find.Offset(int(f.Offset))
		if f.Limit >= 0 {
			find = find.Limit(f.Limit)
		}
	}

	var rows []Split
	err := find.Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	splits := make([]split.Split, 0, len(rows))
	for _, row := range rows {
		if f.MemberName != "" && !row.hasMemberName(f.MemberName) {
			continue
		}

		s, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		splits = append(splits, s)
	}

	if f.MemberName == "" {
		return splits, total, nil
	}

	total = int64(len(splits))

	if int(f.Offset) >= len(splits) {
		return []split.Split{}, total, nil
	}
	splits = splits[f.Offset:]

	if f.Limit >= 0 && f.Limit < len(splits) {
		splits = splits[:f.Limit]
	}

	return splits, total, nil
}

func (m Split) hasMemberName(pattern string) bool {
	for _, a := range m.Allocations {
		if glob.Glob(pattern, a.MemberName) {
			return true
		}
	}
	return false
}

// fromDomain converts a split to its database representation.
func fromDomain(s split.Split) (Split, error) {
	if s.Currency != "" {
		if _, err := currency.ParseISO(s.Currency); err != nil {
			return Split{}, fmt.Errorf("%w: %s", ErrCurrencyInvalid, s.Currency)
		}
	}

	m := Split{
		DefaultModel: DefaultModel{
			ID: s.ID,
			Timestamps: Timestamps{
				CreatedAt: s.CreatedAt,
				UpdatedAt: s.UpdatedAt,
			},
		},
		GroupID:       s.GroupID,
		Description:   s.Description,
		Currency:      s.Currency,
		PaidBy:        s.PaidBy,
		BaseAmount:    s.BaseAmount,
		TaxPercentage: s.TaxPercentage,
		TaxAmount:     s.TaxAmount,
		TotalAmount:   s.TotalAmount,
		Method:        s.Method,
		Status:        s.Status,
		SettledAt:     s.SettledAt,
		CancelledAt:   s.CancelledAt,
		Version:       s.Version,
	}

	for i, a := range s.Allocations {
		allocation := Allocation{
			SplitID:       s.ID,
			MemberID:      a.MemberID,
			Position:      i,
			MemberName:    a.MemberName,
			Participating: a.Participating,
			Owed:          a.Owed,
			Paid:          a.Paid,
			PaymentStatus: a.PaymentStatus,
			PaidAt:        a.PaidAt,
		}

		switch v := a.Value.(type) {
		case split.Amount:
			allocation.Amount = v.Amount
		case split.Percentage:
			allocation.Percentage = v.Percentage
		case split.Shares:
			allocation.Shares = v.Shares
		}

		m.Allocations = append(m.Allocations, allocation)
	}

	for i, a := range s.Activity {
		m.Activities = append(m.Activities, Activity{
			SplitID:     s.ID,
			Position:    i,
			Type:        a.Type,
			At:          a.At,
			Actor:       a.Actor,
			MemberID:    a.MemberID,
			Amount:      a.Amount,
			Description: a.Description,
		})
	}

	return m, nil
}

// toDomain converts the database representation to a split.
func (m Split) toDomain() (split.Split, error) {
	s := split.Split{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Version:       m.Version,
		GroupID:       m.GroupID,
		Description:   m.Description,
		Currency:      m.Currency,
		PaidBy:        m.PaidBy,
		BaseAmount:    m.BaseAmount,
		TaxPercentage: m.TaxPercentage,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		Method:        m.Method,
		Status:        m.Status,
		SettledAt:     utc(m.SettledAt),
		CancelledAt:   utc(m.CancelledAt),
		Allocations:   make([]split.Allocation, 0, len(m.Allocations)),
		Activity:      make([]split.Activity, 0, len(m.Activities)),
	}

	for _, a := range m.Allocations {
		var value split.Value
		switch m.Method {
		case split.MethodEqual:
			value = split.Equal{}
		case split.MethodAmount:
			value = split.Amount{Amount: a.Amount}
		case split.MethodPercentage:
			value = split.Percentage{Percentage: a.Percentage}
		case split.MethodShares:
			value = split.Shares{Shares: a.Shares}
		default:
			return split.Split{}, fmt.Errorf("%w: split %s has unknown method %q", ErrGeneral, m.ID, m.Method)
		}

		s.Allocations = append(s.Allocations, split.Allocation{
			MemberID:      a.MemberID,
			MemberName:    a.MemberName,
			Participating: a.Participating,
			Value:         value,
			Owed:          a.Owed,
			Paid:          a.Paid,
			PaymentStatus: a.PaymentStatus,
			PaidAt:        utc(a.PaidAt),
		})
	}

	for _, a := range m.Activities {
		s.Activity = append(s.Activity, split.Activity{
			Type:        a.Type,
			At:          a.At.In(time.UTC),
			Actor:       a.Actor,
			MemberID:    a.MemberID,
			Amount:      a.Amount,
			Description: a.Description,
		})
	}

	return s, nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	u := t.In(time.UTC)
	return &u
}
