package domain

// RecordMeta carries the identity and lifecycle fields shared by every
// persisted record. Entity types embed it so the store can assign ids and
// flip the active flag without knowing the concrete type.
type RecordMeta struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

func (m *RecordMeta) RecordID() int64      { return m.ID }
func (m *RecordMeta) SetRecordID(id int64) { m.ID = id }
func (m *RecordMeta) IsActive() bool       { return m.Active }
func (m *RecordMeta) SetActive(active bool) {
	m.Active = active
}
