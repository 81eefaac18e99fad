package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// HasNext indica se há mais páginas a buscar
func (p Paging) HasNext() bool {
	return p.Next != "" || p.Cursors.After != ""
}
