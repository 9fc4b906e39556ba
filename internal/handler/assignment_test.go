package handler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validBody() assignmentBody {
	return assignmentBody{
		ProfileIDs: []string{"p-1"},
		LocationID: "loc-1",
		BedroomID:  "room-1",
		BedID:      "bed-a",
		StartDate:  "2025-05-03",
		EndDate:    "2025-05-09",
	}
}

func TestAssignmentBodyValidate_AcceptsCompleteBody(t *testing.T) {
	b := validBody()
	start, end, err := b.validate()
	require.NoError(t, err)
	require.Equal(t, "2025-05-03", start.Format("2006-01-02"))
	require.Equal(t, "2025-05-09", end.Format("2006-01-02"))
}

func TestAssignmentBodyValidate_RejectsZeroProfiles(t *testing.T) {
	b := validBody()
	b.ProfileIDs = nil
	_, _, err := b.validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing information")

	// Whitespace-only entries do not count as selected profiles.
	b = validBody()
	b.ProfileIDs = []string{"  ", ""}
	_, _, err = b.validate()
	require.Error(t, err)
}

func TestAssignmentBodyValidate_RejectsMissingFields(t *testing.T) {
	for _, mutate := range []func(*assignmentBody){
		func(b *assignmentBody) { b.LocationID = "" },
		func(b *assignmentBody) { b.BedID = " " },
		func(b *assignmentBody) { b.StartDate = "" },
		func(b *assignmentBody) { b.EndDate = "" },
	} {
		b := validBody()
		mutate(&b)
		_, _, err := b.validate()
		require.Error(t, err)
	}
}

func TestAssignmentBodyValidate_RejectsInvertedRange(t *testing.T) {
	b := validBody()
	b.StartDate, b.EndDate = "2025-05-09", "2025-05-03"
	_, _, err := b.validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "end_date")
}

func TestAssignmentBodyValidate_RejectsMalformedDates(t *testing.T) {
	b := validBody()
	b.StartDate = "05/03/2025"
	_, _, err := b.validate()
	require.Error(t, err)

	b = validBody()
	b.EndDate = "2025-5-9"
	_, _, err = b.validate()
	require.Error(t, err)
}

func TestAssignmentBodyValidate_TrimsInput(t *testing.T) {
	b := validBody()
	b.ProfileIDs = []string{" p-1 ", "p-2"}
	b.BedID = " bed-a "
	_, _, err := b.validate()
	require.NoError(t, err)
	require.Equal(t, []string{"p-1", "p-2"}, b.ProfileIDs)
	require.Equal(t, "bed-a", b.BedID)
}
