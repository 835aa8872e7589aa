package httpsig

import "strings"

// Header is a named header with one or more values.
type Header struct {
	Name   string
	Values []string
}

// Value returns the header values joined with commas.
func (h Header) Value() string {
	return strings.Join(h.Values, ",")
}

// Headers is an ordered header map. Names are matched exactly and the
// signing message follows insertion order. Set and Add on an existing name
// update the shared element; use Clone before changing a copy.
type Headers []Header

// NewHeaders builds Headers from alternating name and value arguments.
// A trailing name without a value is ignored.
func NewHeaders(pairs ...string) Headers {
	var h Headers
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Add(pairs[i], pairs[i+1])
	}
	return h
}

func (h Headers) index(name string) int {
	for i := range h {
		if h[i].Name == name {
			return i
		}
	}
	return -1
}

// Get returns the comma-joined values of name and whether it is present.
func (h Headers) Get(name string) (string, bool) {
	i := h.index(name)
	if i < 0 {
		return "", false
	}
	return h[i].Value(), true
}

// Set replaces the values of name, keeping its position. A new name is
// appended.
func (h *Headers) Set(name string, values ...string) {
	vals := append([]string(nil), values...)
	if i := h.index(name); i >= 0 {
		(*h)[i].Values = vals
		return
	}
	*h = append(*h, Header{Name: name, Values: vals})
}

// Add appends value to name, appending the name if it is new.
func (h *Headers) Add(name, value string) {
	if i := h.index(name); i >= 0 {
		(*h)[i].Values = append((*h)[i].Values, value)
		return
	}
	*h = append(*h, Header{Name: name, Values: []string{value}})
}

// Del removes name. The backing array of h is left untouched, so
// copies of h keep their headers.
func (h *Headers) Del(name string) {
	i := h.index(name)
	if i < 0 {
		return
	}
	out := make(Headers, 0, len(*h)-1)
	out = append(out, (*h)[:i]...)
	*h = append(out, (*h)[i+1:]...)
}

// Names returns the header names in order.
func (h Headers) Names() []string {
	names := make([]string, len(h))
	for i := range h {
		names[i] = h[i].Name
	}
	return names
}

// Clone returns a deep copy of h.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	c := make(Headers, len(h))
	for i := range h {
		c[i] = Header{Name: h[i].Name, Values: append([]string(nil), h[i].Values...)}
	}
	return c
}
