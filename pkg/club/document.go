package club

// Document is implemented by every record kept in a collection store.
// The revision is a concurrency token owned by the store.
type Document interface {
	DocID() string
	DocRevision() int64
	SetDocRevision(rev int64)
}

func (c *Client) DocID() string            { return c.ID }
func (c *Client) DocRevision() int64       { return c.Revision }
func (c *Client) SetDocRevision(rev int64) { c.Revision = rev }

func (t *Task) DocID() string            { return t.ID }
func (t *Task) DocRevision() int64       { return t.Revision }
func (t *Task) SetDocRevision(rev int64) { t.Revision = rev }

func (s *ScheduleSlot) DocID() string            { return s.ID }
func (s *ScheduleSlot) DocRevision() int64       { return s.Revision }
func (s *ScheduleSlot) SetDocRevision(rev int64) { s.Revision = rev }

func (l *Lead) DocID() string            { return l.ID }
func (l *Lead) DocRevision() int64       { return l.Revision }
func (l *Lead) SetDocRevision(rev int64) { l.Revision = rev }

func (e *LeadLifecycleEvent) DocID() string            { return e.ID }
func (e *LeadLifecycleEvent) DocRevision() int64       { return e.Revision }
func (e *LeadLifecycleEvent) SetDocRevision(rev int64) { e.Revision = rev }

func (a *AttendanceEntry) DocID() string            { return a.ID }
func (a *AttendanceEntry) DocRevision() int64       { return a.Revision }
func (a *AttendanceEntry) SetDocRevision(rev int64) { a.Revision = rev }

func (s *Settings) DocID() string            { return s.ID }
func (s *Settings) DocRevision() int64       { return s.Revision }
func (s *Settings) SetDocRevision(rev int64) { s.Revision = rev }
