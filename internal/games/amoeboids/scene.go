package amoeboids

// Scene is the renderer binding. A Population attaches every entity exactly
// once when it is created and detaches it exactly once when it is removed.
// Implementations must tolerate Detach of an unknown id.
type Scene interface {
	Attach(id EntityID, kind Kind)
	Detach(id EntityID)
}

// Layers is the built-in scene: it keeps attached entities grouped by kind
// in attach order, which is the order Render draws them.
type Layers struct {
	kinds map[EntityID]Kind
	order map[Kind][]EntityID
}

// NewLayers creates an empty scene index.
func NewLayers() *Layers {
	return &Layers{
		kinds: make(map[EntityID]Kind),
		order: make(map[Kind][]EntityID),
	}
}

// Attach adds id to the layer for kind. Re-attaching is ignored.
func (l *Layers) Attach(id EntityID, kind Kind) {
	if _, ok := l.kinds[id]; ok {
		return
	}
	l.kinds[id] = kind
	l.order[kind] = append(l.order[kind], id)
}

// Detach removes id from its layer. Unknown ids are ignored.
func (l *Layers) Detach(id EntityID) {
	kind, ok := l.kinds[id]
	if !ok {
		return
	}
	delete(l.kinds, id)
	ids := l.order[kind]
	for i, v := range ids {
		if v == id {
			l.order[kind] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
}

// IDs returns the attached ids of one kind in attach order.
func (l *Layers) IDs(kind Kind) []EntityID {
	return l.order[kind]
}

// Len returns the number of attached entities.
func (l *Layers) Len() int {
	return len(l.kinds)
}

// Has reports whether id is attached.
func (l *Layers) Has(id EntityID) bool {
	_, ok := l.kinds[id]
	return ok
}

// scenes fans attach/detach out to several scenes.
type scenes []Scene

func (s scenes) Attach(id EntityID, kind Kind) {
	for _, sc := range s {
		sc.Attach(id, kind)
	}
}

func (s scenes) Detach(id EntityID) {
	for _, sc := range s {
		sc.Detach(id)
	}
}
