package directory_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/paybridge/pkg/directory"
	"github.com/agentstation/paybridge/pkg/payroll"
)

func testDirectory() []directory.Employee {
	return []directory.Employee{
		{ID: "42", FirstName: "Jane", LastName: "Doe", HomeDepartment: "100"},
		{ID: "43", FirstName: "John", LastName: "Smith"},
		{ID: "44", FirstName: "Jane", LastName: "Doe", HomeDepartment: "200"},
	}
}

func TestMatchEmptyDirectory(t *testing.T) {
	// With nothing to validate against, validation must not block.
	outcome := directory.Match(payroll.Record{FirstName: "Any", LastName: "One"}, nil)
	assert.Equal(t, directory.MatchExact, outcome.Kind)
	assert.Nil(t, outcome.Entity)
	assert.Empty(t, outcome.Candidates)
}

func TestMatchByKey(t *testing.T) {
	t.Run("unique key is exact", func(t *testing.T) {
		outcome := directory.Match(payroll.Record{EmployeeID: "43"}, testDirectory())
		require.Equal(t, directory.MatchExact, outcome.Kind)
		require.NotNil(t, outcome.Entity)
		assert.Equal(t, "John", outcome.Entity.FirstName)
	})

	t.Run("key is trimmed before comparison", func(t *testing.T) {
		outcome := directory.Match(payroll.Record{EmployeeID: "  43  "}, testDirectory())
		require.Equal(t, directory.MatchExact, outcome.Kind)
		assert.Equal(t, "43", outcome.Entity.ID)
	})

	t.Run("alternate keys match", func(t *testing.T) {
		dir := []directory.Employee{
			{ID: "7", SSN: "123456789", ClockNumber: "C-99", FirstName: "Amy", LastName: "Lee"},
		}
		for _, key := range []string{"7", "123456789", "C-99"} {
			outcome := directory.Match(payroll.Record{EmployeeID: key}, dir)
			assert.Equal(t, directory.MatchExact, outcome.Kind, "key %q", key)
		}
	})

	t.Run("unmatched key falls through to names", func(t *testing.T) {
		rec := payroll.Record{EmployeeID: "999", FirstName: "John", LastName: "Smith"}
		outcome := directory.Match(rec, testDirectory())
		require.Equal(t, directory.MatchAmbiguous, outcome.Kind)
		require.Len(t, outcome.Candidates, 1)
		assert.Equal(t, "43", outcome.Candidates[0].ID)
	})
}

func TestMatchByName(t *testing.T) {
	t.Run("single name candidate is ambiguous, not exact", func(t *testing.T) {
		rec := payroll.Record{FirstName: "john", LastName: "smith"}
		outcome := directory.Match(rec, testDirectory())
		require.Equal(t, directory.MatchAmbiguous, outcome.Kind)
		require.Len(t, outcome.Candidates, 1)
		assert.Equal(t, "43", outcome.Candidates[0].ID)
	})

	t.Run("multiple candidates preserve directory order", func(t *testing.T) {
		rec := payroll.Record{FirstName: "JANE", LastName: "DOE"}
		outcome := directory.Match(rec, testDirectory())
		require.Equal(t, directory.MatchAmbiguous, outcome.Kind)
		require.Len(t, outcome.Candidates, 2)
		assert.Equal(t, "42", outcome.Candidates[0].ID)
		assert.Equal(t, "44", outcome.Candidates[1].ID)
	})

	t.Run("no candidates is a no-match", func(t *testing.T) {
		rec := payroll.Record{FirstName: "Nobody", LastName: "Here"}
		outcome := directory.Match(rec, testDirectory())
		assert.Equal(t, directory.MatchNoMatch, outcome.Kind)
	})

	t.Run("partial names do not match", func(t *testing.T) {
		rec := payroll.Record{FirstName: "Jan", LastName: "Doe"}
		outcome := directory.Match(rec, testDirectory())
		assert.Equal(t, directory.MatchNoMatch, outcome.Kind)
	})
}

func TestMatchDeterminism(t *testing.T) {
	rec := payroll.Record{FirstName: "Jane", LastName: "Doe"}
	dir := testDirectory()

	first := directory.Match(rec, dir)
	for i := 0; i < 10; i++ {
		again := directory.Match(rec, dir)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("match outcome changed between runs (-first +again):\n%s", diff)
		}
	}
}

func TestMatchKindString(t *testing.T) {
	assert.Equal(t, "exact", directory.MatchExact.String())
	assert.Equal(t, "ambiguous", directory.MatchAmbiguous.String())
	assert.Equal(t, "no_match", directory.MatchNoMatch.String())
}
