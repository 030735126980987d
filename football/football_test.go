package football_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvrate/core"
	"github.com/katalvlaran/lvrate/football"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conferencesCSV = `Alabama,SEC
Auburn,SEC
Ohio State,Big Ten
Michigan,Big Ten
Texas A&M,SEC
`

const gamesCSV = `Date,Home,HomeScore,Visitor,VisitorScore,Line
08/31/2013,Alabama,35,Texas A&M,10,-7.5
09/07/2013,Michigan,41,Ohio State,42,3
09/14/2013,Auburn,21,Ohio State,21,
11/30/2013,Auburn,34,Alabama,28,10
`

func mustGames(t *testing.T) ([]football.Game, map[string]string) {
	t.Helper()
	games, err := football.ReadGames(strings.NewReader(gamesCSV))
	require.NoError(t, err)
	confs, err := football.ReadConferences(strings.NewReader(conferencesCSV))
	require.NoError(t, err)
	return games, confs
}

func TestReadConferences(t *testing.T) {
	confs, err := football.ReadConferences(strings.NewReader(conferencesCSV))
	require.NoError(t, err)
	assert.Len(t, confs, 5)
	assert.Equal(t, "Big Ten", confs["Ohio State"])

	confs, err = football.ReadConferences(strings.NewReader("A,X\nA,Y\n"))
	require.NoError(t, err)
	assert.Equal(t, "Y", confs["A"], "last entry wins")

	_, err = football.ReadConferences(strings.NewReader("A,X\nB\n"))
	assert.ErrorIs(t, err, football.ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadGames(t *testing.T) {
	games, err := football.ReadGames(strings.NewReader(gamesCSV))
	require.NoError(t, err)
	require.Len(t, games, 4)
	assert.Equal(t, football.Game{
		Date: "08/31/2013", Home: "Alabama", HomeScore: 35, Visitor: "Texas A&M", VisitorScore: 10,
	}, games[0])
	assert.Equal(t, 42, games[1].VisitorScore)

	games, err = football.ReadGames(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestReadGames_Malformed(t *testing.T) {
	tests := []struct {
		name, in, wantLine string
	}{
		{name: "short row", in: "h\n1,A,3,B,4\n", wantLine: "line 2"},
		{name: "bad home score", in: "h\n1,A,3,B,4,0\n1,A,x,B,4,0\n", wantLine: "line 3"},
		{name: "bad visitor score", in: "h\n1,A,3,B,four,0\n", wantLine: "line 2"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := football.ReadGames(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, football.ErrMalformedRow)
			assert.Contains(t, err.Error(), tc.wantLine)
		})
	}
}

func TestWinOrLose(t *testing.T) {
	home := football.Game{Home: "H", HomeScore: 3, Visitor: "V", VisitorScore: 1}
	assert.Equal(t, core.Pair{Winner: "H", Loser: "V"}, home.WinOrLose())

	away := football.Game{Home: "H", HomeScore: 1, Visitor: "V", VisitorScore: 3}
	assert.Equal(t, core.Pair{Winner: "V", Loser: "H"}, away.WinOrLose())

	tie := football.Game{Home: "H", HomeScore: 2, Visitor: "V", VisitorScore: 2}
	assert.Equal(t, core.Pair{Winner: "V", Loser: "H"}, tie.WinOrLose())
}

func TestPairs(t *testing.T) {
	games, _ := mustGames(t)
	assert.Equal(t, []core.Pair{
		{Winner: "Alabama", Loser: "Texas A&M"},
		{Winner: "Ohio State", Loser: "Michigan"},
		{Winner: "Ohio State", Loser: "Auburn"},
		{Winner: "Auburn", Loser: "Alabama"},
	}, football.Pairs(games))
}

func TestBuildGraph(t *testing.T) {
	games, confs := mustGames(t)
	g, err := football.BuildGraph(games, confs)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alabama", "Auburn", "Michigan", "Ohio State", "Texas A&M"}, g.Competitors())
	assert.Equal(t, []string{"Big Ten", "SEC"}, g.Groups())
	assert.Equal(t, 4, g.OutcomeCount())

	w, l, err := g.Record("Ohio State")
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	assert.Equal(t, 0, l)

	delete(confs, "Michigan")
	_, err = football.BuildGraph(games, confs)
	assert.ErrorIs(t, err, football.ErrUnknownTeam)
	assert.Contains(t, err.Error(), "Michigan")
}

func TestSplitByConference(t *testing.T) {
	games, confs := mustGames(t)
	in, cross, err := football.SplitByConference(games, confs)
	require.NoError(t, err)

	assert.Equal(t, map[string][]core.Pair{
		"SEC": {
			{Winner: "Alabama", Loser: "Texas A&M"},
			{Winner: "Auburn", Loser: "Alabama"},
		},
		"Big Ten": {{Winner: "Ohio State", Loser: "Michigan"}},
	}, in)
	assert.Equal(t, []core.Pair{{Winner: "Ohio State", Loser: "Auburn"}}, cross)
}

func TestSplitByConference_EmptyConference(t *testing.T) {
	games := []football.Game{
		{Date: "09/01/2013", Home: "Army", HomeScore: 20, Visitor: "Navy", VisitorScore: 17},
		{Date: "09/08/2013", Home: "Army", HomeScore: 3, Visitor: "Alabama", VisitorScore: 49},
	}
	confs := map[string]string{"Army": "", "Navy": "", "Alabama": "SEC"}

	in, cross, err := football.SplitByConference(games, confs)
	require.NoError(t, err)
	assert.Equal(t, map[string][]core.Pair{"": {{Winner: "Army", Loser: "Navy"}}}, in)
	assert.Equal(t, []core.Pair{{Winner: "Alabama", Loser: "Army"}}, cross)

	_, _, err = football.SplitByConference(games, map[string]string{"Army": ""})
	assert.ErrorIs(t, err, football.ErrUnknownTeam)
}

func TestBuildGraph_SelfPlayRow(t *testing.T) {
	games := []football.Game{
		{Date: "09/01/2013", Home: "Army", HomeScore: 7, Visitor: "Army", VisitorScore: 0},
	}
	g, err := football.BuildGraph(games, map[string]string{"Army": "Independent"})
	require.NoError(t, err)
	assert.True(t, g.SelfPlay())
	assert.True(t, g.HasOutcome("Army", "Army"))
	assert.Equal(t, 1, g.OutcomeCount())
}
