package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	padelelo "github.com/hedon954/padel-elo"
)

func settlement() *padelelo.Settlement {
	return &padelelo.Settlement{
		EventID: "m1",
		Kind:    padelelo.KindMatch,
		Changes: []padelelo.Change{
			{PairID: "A", PlayerID: "ana", Before: 1500, Delta: 52, After: 1552},
			{PairID: "A", PlayerID: "bea", Before: 1500, Delta: 52, After: 1552},
			{PairID: "B", PlayerID: "carla", Before: 1500, Delta: -52, After: 1448},
			{PairID: "B", PlayerID: "dani", Before: 1500, Delta: -52, After: 1448},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(settlement(), nil)
	require.Len(t, rows, 4)
	assert.Equal(t, Row{EventID: "m1", Kind: "match", PairID: "B", PlayerID: "carla", Before: 1500, Delta: -52, After: 1448}, rows[2])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, settlement()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, header, strings.Fields(lines[0]))
	assert.Equal(t, []string{"m1", "match", "A", "ana", "1500", "+52", "1552"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"m1", "match", "B", "dani", "1500", "-52", "1448"}, strings.Fields(lines[4]))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.xlsx")
	require.NoError(t, WriteXLSX(path, settlement()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, []string{"m1", "match", "A", "bea", "1500", "52", "1552"}, rows[2])
}

func TestSummary(t *testing.T) {
	sum, err := Summary(settlement())
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Players)
	assert.InDelta(t, 0, sum.Mean, 1e-12)
	assert.InDelta(t, 52, sum.StdDev, 1e-12)
	assert.Equal(t, -52.0, sum.Min)
	assert.Equal(t, 52.0, sum.Max)

	empty, err := Summary()
	require.NoError(t, err)
	assert.Equal(t, DeltaSummary{}, empty)
}
