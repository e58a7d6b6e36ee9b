package ps

import "fmt"

// Handle is a stable, monotonically assigned identifier for a composite
// cell in a VM. Two Objects carrying the same Handle alias the same
// underlying storage; equality of composites is handle identity.
type Handle uint32

// cellKind tags which composite shape a cell holds, so typed accessors can
// fail TypeCheck on a kind mismatch without a type switch at every call
// site.
type cellKind int

const (
	cellArray cellKind = iota
	cellDictionary
	cellString
)

// ArrayCell is the VM-resident storage for an Array or procedure object.
type ArrayCell struct {
	Elems  []Object
	Mode   Mode
	Access Access
}

// DictionaryCell is the VM-resident storage for a Dictionary object. Keys
// are the stringified byte form shared by Names and Strings (see
// Context.stringify); order is insertion order, used by forall and the
// pretty printer per the documented choice for unspecified dict iteration
// order.
type DictionaryCell struct {
	Keys     []string
	Values   map[string]Object
	Capacity int
	Mode     Mode
	Access   Access
}

// Get looks up key, reporting presence.
func (d *DictionaryCell) Get(key string) (Object, bool) {
	v, ok := d.Values[key]
	return v, ok
}

// Set inserts or overwrites key, preserving first-insertion order.
func (d *DictionaryCell) Set(key string, v Object) {
	if d.Values == nil {
		d.Values = make(map[string]Object)
	}
	if _, exists := d.Values[key]; !exists {
		d.Keys = append(d.Keys, key)
	}
	d.Values[key] = v
}

// Delete removes key, reporting whether it was present.
func (d *DictionaryCell) Delete(key string) bool {
	if _, ok := d.Values[key]; !ok {
		return false
	}
	delete(d.Values, key)
	for i, k := range d.Keys {
		if k == key {
			d.Keys = append(d.Keys[:i], d.Keys[i+1:]...)
			break
		}
	}
	return true
}

// Len reports the current number of entries (as opposed to Capacity).
func (d *DictionaryCell) Len() int { return len(d.Keys) }

// StringCell is the VM-resident storage for a String object: a raw byte
// buffer with no encoding attached.
type StringCell struct {
	Bytes  []byte
	Access Access
}

type cell struct {
	kind cellKind
	arr  *ArrayCell
	dict *DictionaryCell
	str  *StringCell
}

// VM is the arena that owns every composite value in a Context. Handles
// are handed out monotonically and never reused within an evaluation;
// there is no restore/deallocation, matching the spec's explicit
// non-goal of VM snapshotting.
type VM struct {
	cells []cell
	limit int
}

// NewVM returns an empty arena. A limit of 0 means unbounded; otherwise
// Insert fails with LimitCheck once that many cells are live.
func NewVM(limit int) *VM {
	return &VM{limit: limit}
}

func (vm *VM) checkLimit() error {
	if vm.limit > 0 && len(vm.cells) >= vm.limit {
		return newError(LimitCheck, "virtual memory exhausted")
	}
	return nil
}

// InsertArray allocates a new array cell and returns its handle.
func (vm *VM) InsertArray(c *ArrayCell) (Handle, error) {
	if err := vm.checkLimit(); err != nil {
		return 0, err
	}
	vm.cells = append(vm.cells, cell{kind: cellArray, arr: c})
	return Handle(len(vm.cells)), nil
}

// InsertDictionary allocates a new dictionary cell and returns its handle.
func (vm *VM) InsertDictionary(c *DictionaryCell) (Handle, error) {
	if err := vm.checkLimit(); err != nil {
		return 0, err
	}
	vm.cells = append(vm.cells, cell{kind: cellDictionary, dict: c})
	return Handle(len(vm.cells)), nil
}

// InsertString allocates a new string cell and returns its handle.
func (vm *VM) InsertString(c *StringCell) (Handle, error) {
	if err := vm.checkLimit(); err != nil {
		return 0, err
	}
	vm.cells = append(vm.cells, cell{kind: cellString, str: c})
	return Handle(len(vm.cells)), nil
}

func (vm *VM) get(h Handle) (*cell, error) {
	i := int(h) - 1
	if i < 0 || i >= len(vm.cells) {
		return nil, newError(VmError, fmt.Sprintf("dangling handle %d", h))
	}
	return &vm.cells[i], nil
}

// Array returns the array cell behind h, or TypeCheck if h names something
// else.
func (vm *VM) Array(h Handle) (*ArrayCell, error) {
	c, err := vm.get(h)
	if err != nil {
		return nil, err
	}
	if c.kind != cellArray {
		return nil, newError(TypeCheck, "expected array")
	}
	return c.arr, nil
}

// Dictionary returns the dictionary cell behind h, or TypeCheck if h names
// something else.
func (vm *VM) Dictionary(h Handle) (*DictionaryCell, error) {
	c, err := vm.get(h)
	if err != nil {
		return nil, err
	}
	if c.kind != cellDictionary {
		return nil, newError(TypeCheck, "expected dictionary")
	}
	return c.dict, nil
}

// String returns the string cell behind h, or TypeCheck if h names
// something else.
func (vm *VM) String(h Handle) (*StringCell, error) {
	c, err := vm.get(h)
	if err != nil {
		return nil, err
	}
	if c.kind != cellString {
		return nil, newError(TypeCheck, "expected string")
	}
	return c.str, nil
}
