package engine

import (
	"testing"
	"time"

	"fleetrental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func TestBuildSegments_MainWindow(t *testing.T) {
	c := &domain.Contract{
		ID:        "c1",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Status:    domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-03"))
	require.Len(t, segs, 1)
	assert.Equal(t, domain.SegmentMain, segs[0].Type)
	assert.Equal(t, day("2024-03-01"), segs[0].Start)
	assert.Equal(t, day("2024-03-05"), segs[0].End)
	assert.Equal(t, 5, segs[0].Days)
}

func TestBuildSegments_SameDayContract(t *testing.T) {
	c := &domain.Contract{
		ID:        "c1",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-01",
		Status:    domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-01"))
	require.Len(t, segs, 1)
	assert.Equal(t, 1, segs[0].Days)
}

func TestBuildSegments_TimeOfDayIgnored(t *testing.T) {
	// A late-evening pickup and an early-morning return are still full days.
	c := &domain.Contract{
		ID:        "c1",
		StartDate: "2024-03-01T22:45:00Z",
		EndDate:   "2024-03-05T06:15:00Z",
		Status:    domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-03"))
	require.Len(t, segs, 1)
	assert.Equal(t, 5, segs[0].Days)
}

func TestBuildSegments_NumberOfDaysOverridesEndDate(t *testing.T) {
	c := &domain.Contract{
		ID:           "c1",
		StartDate:    "2024-03-01",
		EndDate:      "2024-03-31", // ignored
		NumberOfDays: 3,
		Status:       domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-02"))
	require.Len(t, segs, 1)
	assert.Equal(t, day("2024-03-03"), segs[0].End)
	assert.Equal(t, 3, segs[0].Days)
}

func TestBuildSegments_ExtensionUntil(t *testing.T) {
	c := &domain.Contract{
		ID:             "c1",
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-05",
		ExtensionUntil: "2024-03-10",
		Status:         domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-07"))
	require.Len(t, segs, 2)
	assert.Equal(t, domain.SegmentExtension, segs[1].Type)
	assert.Equal(t, day("2024-03-06"), segs[1].Start)
	assert.Equal(t, day("2024-03-10"), segs[1].End)
	assert.Equal(t, 5, segs[1].Days)
}

func TestBuildSegments_ExtendedDays(t *testing.T) {
	c := &domain.Contract{
		ID:           "c1",
		StartDate:    "2024-03-01",
		EndDate:      "2024-03-05",
		ExtendedDays: 2,
		Status:       domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-06"))
	require.Len(t, segs, 2)
	assert.Equal(t, domain.SegmentExtension, segs[1].Type)
	assert.Equal(t, day("2024-03-07"), segs[1].End)
	assert.Equal(t, 2, segs[1].Days)
}

func TestBuildSegments_ExtensionUntilWinsOverExtendedDays(t *testing.T) {
	c := &domain.Contract{
		ID:             "c1",
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-05",
		ExtensionUntil: "2024-03-08",
		ExtendedDays:   30,
		Status:         domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-06"))
	require.Len(t, segs, 2)
	assert.Equal(t, day("2024-03-08"), segs[1].End)
	assert.Equal(t, 3, segs[1].Days)
}

func TestBuildSegments_DegenerateExtensionsIgnored(t *testing.T) {
	tests := []struct {
		name     string
		contract domain.Contract
	}{
		{"extension at base end", domain.Contract{StartDate: "2024-03-01", EndDate: "2024-03-05", ExtensionUntil: "2024-03-05"}},
		{"extension before base end", domain.Contract{StartDate: "2024-03-01", EndDate: "2024-03-05", ExtensionUntil: "2024-03-02"}},
		{"unparsable extension", domain.Contract{StartDate: "2024-03-01", EndDate: "2024-03-05", ExtensionUntil: "bientot"}},
		{"zero extended days", domain.Contract{StartDate: "2024-03-01", EndDate: "2024-03-05", ExtendedDays: 0}},
		{"negative extended days", domain.Contract{StartDate: "2024-03-01", EndDate: "2024-03-05", ExtendedDays: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.contract
			c.Status = domain.ContractStatusOpen
			segs := BuildSegments(&c, day("2024-03-03"))
			require.Len(t, segs, 1)
			assert.Equal(t, domain.SegmentMain, segs[0].Type)
		})
	}
}

func TestBuildSegments_OverdueTail(t *testing.T) {
	c := &domain.Contract{
		ID:        "c1",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Status:    domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-08"))
	require.Len(t, segs, 2)
	assert.Equal(t, domain.SegmentOverdue, segs[1].Type)
	assert.Equal(t, day("2024-03-06"), segs[1].Start)
	assert.Equal(t, day("2024-03-08"), segs[1].End)
	assert.Equal(t, 3, segs[1].Days)
}

func TestBuildSegments_OverdueAfterExtension(t *testing.T) {
	c := &domain.Contract{
		ID:             "c1",
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-05",
		ExtensionUntil: "2024-03-10",
		Status:         domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-12"))
	require.Len(t, segs, 3)
	assert.Equal(t, domain.SegmentOverdue, segs[2].Type)
	assert.Equal(t, day("2024-03-11"), segs[2].Start)
	assert.Equal(t, 2, segs[2].Days)
}

func TestBuildSegments_ClosedContractNeverOverdue(t *testing.T) {
	for _, status := range []domain.ContractStatus{
		domain.ContractStatusClosed,
		domain.ContractStatusCompleted,
		domain.ContractStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			c := &domain.Contract{
				StartDate: "2024-03-01",
				EndDate:   "2024-03-05",
				Status:    status,
			}
			segs := BuildSegments(c, day("2025-01-01"))
			require.Len(t, segs, 1)
			assert.Equal(t, domain.SegmentMain, segs[0].Type)
		})
	}
}

func TestBuildSegments_EndedTodayNotOverdue(t *testing.T) {
	c := &domain.Contract{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Status:    domain.ContractStatusOpen,
	}
	segs := BuildSegments(c, day("2024-03-05"))
	require.Len(t, segs, 1)
}

func TestBuildSegments_UnparsableDatesFallBackToSingleDay(t *testing.T) {
	now := day("2024-06-15")
	tests := []struct {
		name     string
		contract domain.Contract
	}{
		{"empty start", domain.Contract{StartDate: "", EndDate: "2024-03-05"}},
		{"garbage start", domain.Contract{StartDate: "demain", EndDate: "2024-03-05"}},
		{"garbage end", domain.Contract{StartDate: "2024-03-01", EndDate: "la semaine prochaine"}},
		{"end before start", domain.Contract{StartDate: "2024-03-05", EndDate: "2024-03-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.contract
			c.Status = domain.ContractStatusOpen
			segs := BuildSegments(&c, now)
			require.Len(t, segs, 1)
			assert.Equal(t, domain.SegmentMain, segs[0].Type)
			assert.Equal(t, now, segs[0].Start)
			assert.Equal(t, now, segs[0].End)
			assert.Equal(t, 1, segs[0].Days)
		})
	}
}

func TestBuildSegments_DisjointAndOrdered(t *testing.T) {
	c := &domain.Contract{
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-05",
		ExtensionUntil: "2024-03-10",
		Status:         domain.ContractStatusOpen,
	}

	segs := BuildSegments(c, day("2024-03-20"))
	require.Len(t, segs, 3)
	for i := 1; i < len(segs); i++ {
		assert.True(t, segs[i].Start.After(segs[i-1].End),
			"segment %d must start after segment %d ends", i, i-1)
	}
}
