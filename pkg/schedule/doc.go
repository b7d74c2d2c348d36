// Package schedule derives lesson counts and due dates from the weekly
// timetable of each (area, group) pair.
//
// For groups that follow the timetable, the number of lessons a client has
// left is never stored: it is the number of scheduled sessions between today
// and the day the current payment runs out. Manually tracked groups
// (individual and adult lessons) keep an operator-entered counter, which may be
// negative when lessons were taken on credit; the package returns it verbatim.
//
// CalculateManualPayDate is the inverse operation: given a number of paid
// lessons it finds the date of the first session that is no longer covered.
package schedule
