package models

import "sort"

// Position is a player's field position. Positions carry a fixed display
// order (goalkeeper first, forwards last) that roster listings sort by,
// independent of the alphabetical or insertion order.
type Position string

const (
	PositionGoalkeeper      Position = "POR"
	PositionCentreBack      Position = "DFC"
	PositionRightBack       Position = "LTD"
	PositionLeftBack        Position = "LTI"
	PositionSweeper         Position = "LIB"
	PositionDefensiveMid    Position = "MCD"
	PositionCentreMid       Position = "MC"
	PositionAttackingMid    Position = "MCO"
	PositionRightWinger     Position = "ED"
	PositionLeftWinger      Position = "EI"
	PositionCentreForward   Position = "DC"
)

type positionInfo struct {
	Order int
	Label string
}

var positions = map[Position]positionInfo{
	PositionGoalkeeper:    {1, "Goalkeeper"},
	PositionCentreBack:    {2, "Centre Back"},
	PositionRightBack:     {3, "Right Back"},
	PositionLeftBack:      {4, "Left Back"},
	PositionSweeper:       {5, "Sweeper"},
	PositionDefensiveMid:  {6, "Defensive Midfielder"},
	PositionCentreMid:     {7, "Centre Midfielder"},
	PositionAttackingMid:  {8, "Attacking Midfielder"},
	PositionRightWinger:   {9, "Right Winger"},
	PositionLeftWinger:    {10, "Left Winger"},
	PositionCentreForward: {11, "Centre Forward"},
}

// Order returns the display order of the position, 999 for unknown values
// so malformed rows sink to the bottom instead of breaking the sort.
func (p Position) Order() int {
	if info, ok := positions[p]; ok {
		return info.Order
	}
	return 999
}

func (p Position) Label() string {
	if info, ok := positions[p]; ok {
		return info.Label
	}
	return string(p)
}

func (p Position) Valid() bool {
	_, ok := positions[p]
	return ok
}

// AllPositions lists every position in display order, for enum catalog endpoints.
func AllPositions() []Position {
	out := make([]Position, 0, len(positions))
	for p := range positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}

// PlayerStatus describes a player's availability.
type PlayerStatus string

const (
	StatusActive    PlayerStatus = "ACTIVE"
	StatusInjured   PlayerStatus = "INJURED"
	StatusSuspended PlayerStatus = "SUSPENDED"
)

var playerStatusLabels = map[PlayerStatus]string{
	StatusActive:    "Active",
	StatusInjured:   "Injured",
	StatusSuspended: "Suspended",
}

func (s PlayerStatus) Label() string {
	if label, ok := playerStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s PlayerStatus) Valid() bool {
	_, ok := playerStatusLabels[s]
	return ok
}

func AllPlayerStatuses() []PlayerStatus {
	return []PlayerStatus{StatusActive, StatusInjured, StatusSuspended}
}

// Foot is a player's preferred foot.
type Foot string

const (
	FootRight Foot = "RIGHT"
	FootLeft  Foot = "LEFT"
	FootBoth  Foot = "BOTH"
)

var footLabels = map[Foot]string{
	FootRight: "Right",
	FootLeft:  "Left",
	FootBoth:  "Both",
}

func (f Foot) Label() string {
	if label, ok := footLabels[f]; ok {
		return label
	}
	return "Unspecified"
}

func (f Foot) Valid() bool {
	_, ok := footLabels[f]
	return ok
}

func AllFeet() []Foot {
	return []Foot{FootRight, FootLeft, FootBoth}
}

// AttendanceStatus is a player's recorded status for one training session.
type AttendanceStatus string

const (
	AttendancePresent            AttendanceStatus = "PRESENT"
	AttendanceAbsent             AttendanceStatus = "ABSENT"
	AttendanceInjured            AttendanceStatus = "INJURED"
	AttendanceLate               AttendanceStatus = "LATE"
	AttendanceUnjustifiedAbsence AttendanceStatus = "UNJUSTIFIED_ABSENCE"
	AttendanceJustifiedAbsence   AttendanceStatus = "JUSTIFIED_ABSENCE"
)

var attendanceLabels = map[AttendanceStatus]string{
	AttendancePresent:            "Present",
	AttendanceAbsent:             "Absent",
	AttendanceInjured:            "Injured",
	AttendanceLate:               "Late",
	AttendanceUnjustifiedAbsence: "Unjustified absence",
	AttendanceJustifiedAbsence:   "Justified absence",
}

func (s AttendanceStatus) Label() string {
	if label, ok := attendanceLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s AttendanceStatus) Valid() bool {
	_, ok := attendanceLabels[s]
	return ok
}

func AllAttendanceStatuses() []AttendanceStatus {
	return []AttendanceStatus{
		AttendancePresent,
		AttendanceAbsent,
		AttendanceInjured,
		AttendanceLate,
		AttendanceUnjustifiedAbsence,
		AttendanceJustifiedAbsence,
	}
}

// Category is the age bracket a team competes in.
type Category string

const (
	CategorySenior      Category = "SENIOR"
	CategoryJuvenil     Category = "JUVENIL"
	CategoryCadete      Category = "CADETE"
	CategoryInfantil    Category = "INFANTIL"
	CategoryAlevin      Category = "ALEVIN"
	CategoryBenjamin    Category = "BENJAMIN"
	CategoryPrebenjamin Category = "PREBENJAMIN"
)

var categoryLabels = map[Category]string{
	CategorySenior:      "Senior",
	CategoryJuvenil:     "Juvenil",
	CategoryCadete:      "Cadete",
	CategoryInfantil:    "Infantil",
	CategoryAlevin:      "Alevín",
	CategoryBenjamin:    "Benjamín",
	CategoryPrebenjamin: "Prebenjamín",
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func AllCategories() []Category {
	return []Category{
		CategorySenior,
		CategoryJuvenil,
		CategoryCadete,
		CategoryInfantil,
		CategoryAlevin,
		CategoryBenjamin,
		CategoryPrebenjamin,
	}
}
