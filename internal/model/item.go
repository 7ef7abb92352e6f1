package model

// Record is the domain model for a to-do entry.
// Kept minimal on purpose; it’s easy to evolve.
type Record struct {
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
	ID       int    `json:"id"`
}

// Document is the persisted form of the store: a single JSON object whose
// `todos` array preserves insertion order, which doubles as display order.
type Document struct {
	Todos []Record `json:"todos"`
}

// NextID returns max existing id + 1. The empty document starts at 1.
func (d Document) NextID() int {
	max := 0
	for _, r := range d.Todos {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// Append adds a new pending record with the next sequential id.
func (d *Document) Append(title string) Record {
	rec := Record{Title: title, ID: d.NextID()}
	d.Todos = append(d.Todos, rec)
	return rec
}

// MarkComplete flips the record with the given id to complete. Returns false
// when no record carries that id; marking an already complete record again is
// a harmless repeat.
func (d *Document) MarkComplete(id int) bool {
	for i := range d.Todos {
		if d.Todos[i].ID == id {
			d.Todos[i].Complete = true
			return true
		}
	}
	return false
}

// Stats counts complete and pending records.
func (d Document) Stats() (done, pending int) {
	for _, r := range d.Todos {
		if r.Complete {
			done++
		} else {
			pending++
		}
	}
	return
}
