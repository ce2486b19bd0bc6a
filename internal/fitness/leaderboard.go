package fitness

// Trend is a rank movement since the last period.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
)

// SelfName marks the current user's row on a board.
const SelfName = "You"

// globalBoardSize is how many non-self rows the global board shows.
const globalBoardSize = 8

type LeaderboardEntry struct {
	ID     int
	Name   string
	Avatar string
	Points int
	Rank   int
	Change Trend
}

func (e LeaderboardEntry) IsSelf() bool { return e.Name == SelfName }

// BoardScope selects the friends or global board.
type BoardScope string

const (
	ScopeFriends BoardScope = "friends"
	ScopeGlobal  BoardScope = "global"
)

func friendsBoard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{ID: 1, Name: "Sarah J.", Avatar: "S", Points: 2840, Rank: 1, Change: TrendSame},
		{ID: 2, Name: "David P.", Avatar: "D", Points: 2710, Rank: 2, Change: TrendUp},
		{ID: 3, Name: "Alex B.", Avatar: "A", Points: 2480, Rank: 3, Change: TrendDown},
		{ID: 4, Name: "Emma R.", Avatar: "E", Points: 2350, Rank: 4, Change: TrendUp},
		{ID: 5, Name: "Michael K.", Avatar: "M", Points: 2240, Rank: 5, Change: TrendSame},
		{ID: 6, Name: "You", Avatar: "Y", Points: 2120, Rank: 6, Change: TrendUp},
		{ID: 7, Name: "Thomas W.", Avatar: "T", Points: 2050, Rank: 7, Change: TrendDown},
		{ID: 8, Name: "Lisa M.", Avatar: "L", Points: 1980, Rank: 8, Change: TrendSame},
	}
}

func globalBoard() []LeaderboardEntry {
	return []LeaderboardEntry{
		{ID: 1, Name: "John D.", Avatar: "J", Points: 4250, Rank: 1, Change: TrendSame},
		{ID: 2, Name: "Maria S.", Avatar: "M", Points: 4120, Rank: 2, Change: TrendUp},
		{ID: 3, Name: "Robert T.", Avatar: "R", Points: 3980, Rank: 3, Change: TrendSame},
		{ID: 4, Name: "Jessica L.", Avatar: "J", Points: 3850, Rank: 4, Change: TrendDown},
		{ID: 5, Name: "James B.", Avatar: "J", Points: 3720, Rank: 5, Change: TrendUp},
		{ID: 6, Name: "Claire W.", Avatar: "C", Points: 3610, Rank: 6, Change: TrendUp},
		{ID: 7, Name: "You", Avatar: "Y", Points: 2120, Rank: 156, Change: TrendDown},
		{ID: 8, Name: "Eric M.", Avatar: "E", Points: 3520, Rank: 7, Change: TrendSame},
		{ID: 9, Name: "Sophia K.", Avatar: "S", Points: 3480, Rank: 8, Change: TrendDown},
		{ID: 10, Name: "Daniel P.", Avatar: "D", Points: 3420, Rank: 9, Change: TrendUp},
	}
}

// BoardEntries returns the rows shown for a scope. The global board shows the
// top rows without the user, then the user's own row.
func BoardEntries(scope BoardScope) []LeaderboardEntry {
	if scope != ScopeGlobal {
		return friendsBoard()
	}
	var others, self []LeaderboardEntry
	for _, e := range globalBoard() {
		if e.IsSelf() {
			self = append(self, e)
			continue
		}
		others = append(others, e)
	}
	if len(others) > globalBoardSize {
		others = others[:globalBoardSize]
	}
	return append(others, self...)
}

// Leaderboard is the popup panel's state. The zero value is closed and shows
// the friends board.
type Leaderboard struct {
	open      bool
	minimized bool
	scope     BoardScope
}

func (l Leaderboard) Open() bool      { return l.open }
func (l Leaderboard) Minimized() bool { return l.minimized }

// Expanded reports whether the full panel is visible.
func (l Leaderboard) Expanded() bool { return l.open && !l.minimized }

func (l Leaderboard) Scope() BoardScope {
	if l.scope == "" {
		return ScopeFriends
	}
	return l.scope
}

// Toggle restores a minimized panel, otherwise opens or closes it.
func (l *Leaderboard) Toggle() {
	if l.minimized {
		l.minimized = false
		return
	}
	l.open = !l.open
}

func (l *Leaderboard) Minimize() { l.minimized = true }

func (l *Leaderboard) Close() {
	l.open = false
	l.minimized = false
}

func (l *Leaderboard) SetScope(s BoardScope) {
	if s != ScopeGlobal {
		s = ScopeFriends
	}
	l.scope = s
}

func (l Leaderboard) Entries() []LeaderboardEntry { return BoardEntries(l.Scope()) }

// Badge is the row count shown on the minimized pill.
func (l Leaderboard) Badge() int { return len(l.Entries()) }
