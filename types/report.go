package types

import "context"

// RoomReport is the final assignment for one room-group: every student whose
// assigned turn-group falls under the room, sorted by (assigned turn-group,
// surname).
//
// Reports are computed by the core; rendering them (spreadsheet, terminal,
// anything tabular) is the sink's concern.
type RoomReport struct {
	// Room is the room-group the report covers.
	Room RoomGroup

	// Students are the room's members in (Assigned, Surname) order.
	// May be empty for rooms nobody was assigned to.
	Students []*Student
}

// ReportSink renders the per-room-group assignment reports.
//
// Implementations receive fully sorted reports and make no allocation
// decisions of their own. The core makes no assumption about the output
// medium.
type ReportSink interface {
	// WriteReports renders one output table per room-group.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - reports: One report per room-group, in taxonomy enumeration order
	//
	// Returns:
	//   - error: Render or write error (nil on success)
	WriteReports(ctx context.Context, reports []RoomReport) error
}
