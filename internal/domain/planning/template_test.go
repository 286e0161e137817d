package planning

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthPtr(s string) *MonthKey {
	k := MonthKey(s)
	return &k
}

func TestMonthKey(t *testing.T) {
	assert.True(t, MonthKey("2025-01").Valid())
	assert.True(t, MonthKey("2025-12").Valid())
	assert.False(t, MonthKey("2025-13").Valid())
	assert.False(t, MonthKey("2025-1").Valid())
	assert.False(t, MonthKey("garbage").Valid())
	assert.False(t, MonthKey("").Valid())

	assert.True(t, MonthKey("2024-12").Before("2025-01"))
	assert.True(t, MonthKey("2025-02").After("2025-01"))
}

func TestMonthKeyLastN(t *testing.T) {
	keys := MonthKey("2025-03").LastN(6)
	require.Len(t, keys, 6)
	assert.Equal(t, MonthKey("2024-10"), keys[0])
	assert.Equal(t, MonthKey("2025-03"), keys[5])

	// year rollover inside the window
	assert.Equal(t, MonthKey("2024-12"), keys[2])
	assert.Equal(t, MonthKey("2025-01"), keys[3])
}

func TestNewTemplateValidation(t *testing.T) {
	userID := uuid.New()
	amount := decimal.NewFromInt(100)

	_, err := NewTemplate(userID, "", nil, amount, "", "2025-01", nil, FrequencyMonthly)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewTemplate(userID, "Rent", nil, amount.Neg(), "", "2025-01", nil, FrequencyMonthly)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = NewTemplate(userID, "Rent", nil, amount, "", "2025-1", nil, FrequencyMonthly)
	assert.ErrorIs(t, err, ErrInvalidMonthKey)

	_, err = NewTemplate(userID, "Rent", nil, amount, "", "2025-06", monthPtr("2025-01"), FrequencyMonthly)
	assert.ErrorIs(t, err, ErrInvertedWindow)

	_, err = NewTemplate(userID, "Rent", nil, amount, "", "2025-01", nil, Frequency("fortnightly"))
	assert.ErrorIs(t, err, ErrInvalidFrequency)

	tpl, err := NewTemplate(userID, "Rent", nil, amount, "", "2025-01", nil, "")
	require.NoError(t, err)
	assert.Equal(t, FrequencyMonthly, tpl.Frequency, "frequency defaults to monthly")
	assert.True(t, tpl.IsActive)
}

func TestTemplateAppliesTo(t *testing.T) {
	userID := uuid.New()
	amount := decimal.NewFromInt(100)

	open, err := NewTemplate(userID, "Rent", nil, amount, "", "2025-01", nil, FrequencyMonthly)
	require.NoError(t, err)
	bounded, err := NewTemplate(userID, "Gym", nil, amount, "", "2025-01", monthPtr("2025-06"), FrequencyMonthly)
	require.NoError(t, err)

	tests := []struct {
		name string
		tpl  *Template
		key  MonthKey
		want bool
	}{
		{"before start", open, "2024-12", false},
		{"at start", open, "2025-01", true},
		{"open end far future", open, "2031-07", true},
		{"at end inclusive", bounded, "2025-06", true},
		{"month after end", bounded, "2025-07", false},
		{"inside window", bounded, "2025-03", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tpl.AppliesTo(tt.key))
		})
	}

	open.IsActive = false
	assert.False(t, open.AppliesTo("2025-03"), "inactive templates never apply")
}

func TestInstantiateTemplate(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()
	tpl, err := NewTemplate(userID, "Rent", &catID, decimal.NewFromInt(1200), "landlord", "2025-01", nil, FrequencyMonthly)
	require.NoError(t, err)

	planID := uuid.New()
	item := InstantiateTemplate(planID, tpl)

	assert.Equal(t, planID, item.MonthPlanID)
	assert.Equal(t, "Rent", item.Name)
	require.NotNil(t, item.TemplateID)
	assert.Equal(t, tpl.ID, *item.TemplateID)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, catID, *item.CategoryID)
	assert.True(t, item.PlannedAmount.Equal(decimal.NewFromInt(1200)))
	assert.True(t, item.ActualAmount.IsZero())
	assert.False(t, item.IsPaid)
}

func TestItemMatchesTemplate(t *testing.T) {
	userID := uuid.New()
	catID := uuid.New()
	tpl, err := NewTemplate(userID, "Rent", &catID, decimal.NewFromInt(1200), "", "2025-01", nil, FrequencyMonthly)
	require.NoError(t, err)

	planID := uuid.New()
	generated := InstantiateTemplate(planID, tpl)

	// origin reference survives a rename of both sides
	require.NoError(t, generated.Update(nil, "Rent (old flat)", decimal.NewFromInt(1100), decimal.Zero, false, ""))
	assert.True(t, generated.MatchesTemplate(tpl))

	manual, err := NewItem(planID, &catID, "Rent", decimal.NewFromInt(1200), decimal.Zero, "")
	require.NoError(t, err)
	assert.True(t, manual.MatchesTemplate(tpl), "name and category match counts without an origin ref")

	otherCat := uuid.New()
	manualOther, err := NewItem(planID, &otherCat, "Rent", decimal.NewFromInt(1200), decimal.Zero, "")
	require.NoError(t, err)
	assert.False(t, manualOther.MatchesTemplate(tpl))

	uncategorized, err := NewItem(planID, nil, "Rent", decimal.NewFromInt(1200), decimal.Zero, "")
	require.NoError(t, err)
	assert.False(t, uncategorized.MatchesTemplate(tpl), "nil and non-nil categories do not match")
}
