package maxpreps

// SupplierID is the stat supplier identifier MaxPreps expects as the
// first line of every import file.
const SupplierID = "669ae75f-4563-494a-8c17-370aaa8539d4"

// FieldMap binds one totals column to a MaxPreps field. Mappings are
// ordered: extras not in a sport's declared field list are emitted in
// mapping order.
type FieldMap struct {
	Column string `json:"column"`
	Field  string `json:"field"`
}

// Mapping is an ordered totals-column to MaxPreps-field mapping.
type Mapping []FieldMap

// FootballFields is the full MaxPreps football vocabulary, in the order
// the import format expects. It doubles as the ordering fallback when a
// sport declares no field list.
var FootballFields = []string{
	"RushingNum", "RushingYards", "RushingLong",
	"ReceivingNum", "ReceivingYards", "ReceivingLong",
	"PassingComp", "PassingAtt", "PassingInt", "PassingYards", "PassingTD", "PassingLong",
	"OffensiveFumbles", "OffensiveFumblesLost",
	"PancakeBlocks",
	"Tackles", "Assists", "TotalTackles", "TacklesForLoss",
	"Sacks", "SacksYardsLost", "QBHurries",
	"INTs", "INTYards", "PassesDefensed",
	"BlockedPunts", "BlockedFG",
	"FumbleRecoveries", "FumbleRecoveryYards", "CausedFumbles",
	"PuntReturnNum", "PuntReturnYards", "PuntReturnLong", "PuntReturnFairCatches",
	"KickoffReturnNum", "KickoffReturnYards", "KickoffReturnLong",
	"TotalReturnYards",
	"PuntNum", "PuntYards", "PuntLong", "PuntInside20",
	"KickoffNum", "KickoffYards", "KickoffLong", "KickoffTouchbacks",
	"Touchdowns", "RushingTDNum", "ReceivingTDNum", "FumbleReturnedTDNum",
	"IntReturnedTDNum", "PuntReturnedTDNum", "KickoffReturnedTDNum", "TotalTDNum",
	"PATKickingMade", "PATKickingAtt", "PATKickingPoints",
	"PATRushingNum", "PATReceivingNum", "TotalConversionPoints",
	"FGMade", "FGAttempted", "FGLong",
	"Safeties",
	"TotalPoints",
}

// BaseballFields is the declared MaxPreps baseball vocabulary.
var BaseballFields = []string{
	// Batting / baserunning
	"AtBats", "Runs", "Singles", "Doubles", "Triples", "HomeRuns", "Hits", "RunsBattedIn",
	"SacrificeFly", "SacrificeBunt", "BaseOnBalls", "StruckOut", "HitByPitch", "ReachedOnError",
	"FieldersChoice", "LeftOnBase", "GrandSlams",
	"StolenBase", "StolenBaseAttempts",
	// Fielding
	"PutOuts", "Assists", "Errors", "DoublePlays", "TriplePlays",
	// Catcher
	"StolenBaseAttemptsCatcher", "CaughtStealing", "PassedBalls",
	// Pitching
	"Start", "Win", "Loss", "Save", "Appearances", "CompleteGame", "ShutOut", "NoHitter", "PerfectGame",
	"InningsPitched", "PartialInningPitched", "BattersFaced", "RunsAgainst", "EarnedRuns", "HitsAgainst",
	"DoublesAgainst", "TriplesAgainst", "HomeRunsAgainst", "SacrificeFlyPitcher", "SacrificeBuntPitcher",
	"BaseOnBallsAgainst", "BattersStruckOut", "HitBatter", "Balks", "WildPitches", "NumberOfPitches",
	"PickOffs", "StolenBasesPitcher",
}

// SoccerFields is the declared MaxPreps soccer vocabulary.
var SoccerFields = []string{
	"FieldMinutesPlayed",
	"Goals", "Assists", "Shots", "ShotsOnGoal", "Steals",
	"PenaltyKicksMade", "PenaltyKicksAttempted", "CornerKicks",
	"GameWinningGoal", "YellowCards", "RedCards",
	"MinutesPlayed", "OvertimeMinutesPlayed", "GoalsAgainst", "Saves",
	"OpponentShotsOnGoal", "OpponentPenaltyKickSaves", "OpponentPenaltyKickAttempts",
	"ShutOuts", "Win", "Loss", "Tie",
}

// SportFields returns the declared field list for a sport. "Jersey" is
// never declared; it is always prepended to the header. Basketball and
// Lacrosse have no MaxPreps vocabulary yet.
func SportFields(sport string) []string {
	switch sport {
	case "Football":
		return FootballFields
	case "Baseball":
		return BaseballFields
	case "Soccer":
		return SoccerFields
	default:
		return nil
	}
}

// DefaultMapping returns the default totals-column mapping for a sport.
func DefaultMapping(sport string) Mapping {
	switch sport {
	case "Football":
		return footballMapping
	case "Soccer":
		return soccerMapping
	default:
		return Mapping{
			{Column: "Jersey", Field: "Jersey"},
			{Column: "number", Field: "Jersey"},
		}
	}
}

// footballMapping maps the totals columns this system produces plus the
// common manual-sheet headers onto the football vocabulary.
var footballMapping = Mapping{
	{Column: "Jersey", Field: "Jersey"},
	{Column: "number", Field: "Jersey"},
	{Column: "Rush Attempts", Field: "RushingNum"},
	{Column: "Rushing Yards", Field: "RushingYards"},
	{Column: "Receptions", Field: "ReceivingNum"},
	{Column: "Receiving Yards", Field: "ReceivingYards"},
	{Column: "Pass Completions", Field: "PassingComp"},
	{Column: "Pass Attempts", Field: "PassingAtt"},
	{Column: "Pass Yards", Field: "PassingYards"},
	{Column: "Passing TDs", Field: "PassingTD"},
	{Column: "Fumbles", Field: "OffensiveFumbles"},
	{Column: "Tackles", Field: "Tackles"},
	{Column: "Sacks", Field: "Sacks"},
	{Column: "Interceptions", Field: "INTs"},
	{Column: "Forced Fumbles", Field: "CausedFumbles"},
	{Column: "Return Yards", Field: "TotalReturnYards"},
	{Column: "Punts", Field: "PuntNum"},
	{Column: "Punt Yards", Field: "PuntYards"},
	{Column: "Touchdowns (Total)", Field: "TotalTDNum"},
	{Column: "Rushing TDs", Field: "RushingTDNum"},
	{Column: "Receiving TDs", Field: "ReceivingTDNum"},
	{Column: "FG Made", Field: "FGMade"},
	{Column: "FG Attempts", Field: "FGAttempted"},
	// Common short headers from hand-kept sheets
	{Column: "Rush Att", Field: "RushingNum"},
	{Column: "Rush Yds", Field: "RushingYards"},
	{Column: "Rec", Field: "ReceivingNum"},
	{Column: "Rec Yds", Field: "ReceivingYards"},
	{Column: "Pass Cmp", Field: "PassingComp"},
	{Column: "Pass Att", Field: "PassingAtt"},
	{Column: "Pass Yds", Field: "PassingYards"},
	{Column: "Pass TD", Field: "PassingTD"},
	{Column: "TD", Field: "Touchdowns"},
	{Column: "FF", Field: "CausedFumbles"},
	{Column: "INT", Field: "INTs"},
}

var soccerMapping = Mapping{
	{Column: "Jersey", Field: "Jersey"},
	{Column: "number", Field: "Jersey"},
	{Column: "Goals", Field: "Goals"},
	{Column: "Assists", Field: "Assists"},
	{Column: "Shots", Field: "Shots"},
	{Column: "Shots on Target", Field: "ShotsOnGoal"},
	{Column: "Shots on Goal", Field: "ShotsOnGoal"},
	{Column: "Yellow Cards", Field: "YellowCards"},
	{Column: "Red Cards", Field: "RedCards"},
	{Column: "Saves", Field: "Saves"},
}
