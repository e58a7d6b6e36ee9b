package ps

// Symbol is an interned byte-string identity: two Names with the same
// Symbol share the same underlying bytes, so comparing Symbols is a cheap
// integer compare instead of a byte-slice compare.
type Symbol uint32

// nameTable interns the byte strings behind Name objects and dictionary
// keys, the same symbolicate/string trick the teacher used for its
// dictionary-threaded word lookup.
type nameTable struct {
	strings []string
	ids     map[string]Symbol
}

// intern returns the Symbol for s, assigning a new one if s has not been
// seen before.
func (nt *nameTable) intern(s string) Symbol {
	if id, ok := nt.ids[s]; ok {
		return id
	}
	if nt.ids == nil {
		nt.ids = make(map[string]Symbol)
	}
	id := Symbol(len(nt.strings)) + 1
	nt.strings = append(nt.strings, s)
	nt.ids[s] = id
	return id
}

// text returns the bytes behind sym, or "" if sym is zero/unknown.
func (nt *nameTable) text(sym Symbol) string {
	if i := int(sym) - 1; i >= 0 && i < len(nt.strings) {
		return nt.strings[i]
	}
	return ""
}
