package panlex

// ExprID identifies one expression in one language variety.
type ExprID int64

// LangVariety returns the PanLex uid of the most general variety of an
// ISO 639-3 language code, e.g. "eng" -> "eng-000".
func LangVariety(iso string) string {
	return iso + "-000"
}

// Expression is a resolved source word.
type Expression struct {
	ID   ExprID
	Text string
}

// Expressions keeps resolved expressions in the order they were returned and
// allows lookup by id. The zero value is ready to use.
type Expressions struct {
	order []ExprID
	text  map[ExprID]string
}

// Add records text for id. Adding an id twice replaces its text but keeps
// its original position.
func (e *Expressions) Add(id ExprID, text string) {
	if e.text == nil {
		e.text = make(map[ExprID]string)
	}
	if _, ok := e.text[id]; !ok {
		e.order = append(e.order, id)
	}
	e.text[id] = text
}

// Text returns the source text of id.
func (e *Expressions) Text(id ExprID) (string, bool) {
	text, ok := e.text[id]
	return text, ok
}

// IDs returns all ids in insertion order.
func (e *Expressions) IDs() []ExprID {
	ids := make([]ExprID, len(e.order))
	copy(ids, e.order)
	return ids
}

// List returns all expressions in insertion order.
func (e *Expressions) List() []Expression {
	out := make([]Expression, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, Expression{ID: id, Text: e.text[id]})
	}
	return out
}

// Len returns the number of distinct ids.
func (e *Expressions) Len() int {
	return len(e.order)
}

// Translations maps a source expression to its candidates grouped by
// translation quality: {expr: {quality: [txt_1, ..., txt_n]}}.
type Translations map[ExprID]map[int][]string

// Add appends txt to the candidates of id at quality.
func (t Translations) Add(id ExprID, quality int, txt string) {
	byQuality, ok := t[id]
	if !ok {
		byQuality = make(map[int][]string)
		t[id] = byQuality
	}
	byQuality[quality] = append(byQuality[quality], txt)
}
