package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countries(t *testing.T) *Deck {
	t.Helper()
	d := New()
	require.NoError(t, d.Add("France", "Paris", 0))
	require.NoError(t, d.Add("Italy", "Rome", 0))
	return d
}

func TestAdd_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name      string
		term, def string
		wantErr   error
	}{
		{name: "same term", term: "France", def: "Lyon", wantErr: ErrTermExists},
		{name: "same definition", term: "Spain", def: "Rome", wantErr: ErrDefinitionExists},
		{name: "both", term: "Italy", def: "Paris", wantErr: ErrTermExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := countries(t)
			before := d.Cards()

			err := d.Add(tt.term, tt.def, 0)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, d.Cards())
		})
	}
}

func TestAdd_NegativeMistakes(t *testing.T) {
	d := New()
	assert.ErrorIs(t, d.Add("a", "b", -1), ErrNegativeMistakes)
	assert.Equal(t, 0, d.Len())
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	d := countries(t)
	require.NoError(t, d.Add("Spain", "Madrid", 3))

	assert.Equal(t, []Card{
		{"France", "Paris", 0},
		{"Italy", "Rome", 0},
		{"Spain", "Madrid", 3},
	}, d.Cards())
}

func TestRemove(t *testing.T) {
	d := countries(t)
	require.NoError(t, d.Add("Spain", "Madrid", 0))

	require.NoError(t, d.Remove("Italy"))
	assert.Equal(t, []Card{{"France", "Paris", 0}, {"Spain", "Madrid", 0}}, d.Cards())
	assert.False(t, d.HasDefinition("Rome"))
}

func TestRemove_NotFound(t *testing.T) {
	d := countries(t)
	before := d.Cards()

	err := d.Remove("Germany")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, d.Cards())
}

func TestOverwrite(t *testing.T) {
	d := countries(t)

	require.NoError(t, d.Overwrite("France", "Marseille", 4))
	assert.Equal(t, Card{"France", "Marseille", 4}, d.At(0))

	// own definition is not a conflict
	require.NoError(t, d.Overwrite("France", "Marseille", 1))

	assert.ErrorIs(t, d.Overwrite("France", "Rome", 0), ErrDefinitionExists)
	assert.ErrorIs(t, d.Overwrite("Peru", "Lima", 0), ErrNotFound)
	assert.Equal(t, Card{"France", "Marseille", 1}, d.At(0))
}

func TestUpsert(t *testing.T) {
	d := countries(t)

	require.NoError(t, d.Upsert(Card{"Italy", "Milan", 2}))
	require.NoError(t, d.Upsert(Card{"Peru", "Lima", 1}))

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, Card{"Italy", "Milan", 2}, d.At(1))
	assert.Equal(t, Card{"Peru", "Lima", 1}, d.At(2))
}

func TestRecordMistake_Monotonic(t *testing.T) {
	d := countries(t)

	prev := 0
	for i := 0; i < 5; i++ {
		require.NoError(t, d.RecordMistake(0))
		assert.Greater(t, d.At(0).Mistakes, prev)
		prev = d.At(0).Mistakes
	}
	assert.Equal(t, 0, d.At(1).Mistakes)

	assert.ErrorIs(t, d.RecordMistake(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RecordMistake(-1), ErrIndexOutOfRange)
}

func TestHardest(t *testing.T) {
	d := New()
	for i, m := range []int{2, 0, 2, 1} {
		require.NoError(t, d.Add(string(rune('a'+i)), string(rune('A'+i)), m))
	}

	assert.Equal(t, []int{0, 2}, d.Hardest())
}

func TestHardest_NoErrors(t *testing.T) {
	assert.Empty(t, New().Hardest())
	assert.Empty(t, countries(t).Hardest())
}

func TestResetStats(t *testing.T) {
	d := countries(t)
	require.NoError(t, d.RecordMistake(0))
	require.NoError(t, d.RecordMistake(1))
	require.NotEmpty(t, d.Hardest())

	d.ResetStats()
	assert.Empty(t, d.Hardest())
	for _, c := range d.Cards() {
		assert.Zero(t, c.Mistakes)
	}
}

func TestCards_ReturnsCopy(t *testing.T) {
	d := countries(t)
	cards := d.Cards()
	cards[0].Term = "Changed"

	assert.Equal(t, "France", d.At(0).Term)
}
