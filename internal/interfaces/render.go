// internal/interfaces/render.go
package interfaces

// VisualNode is the minimal handle the simulation holds on a display-sink
// element. The scene graph behind it may tear down and rebuild whole
// subtrees when tracking is lost, so handles are cached, invalidated on
// loss and lazily re-resolved on next use; a nil result from QueryChild is
// the normal "not ready yet" case.
type VisualNode interface {
	SetAttribute(name string, value any)
	CreateChild(kind string) VisualNode
	// QueryChild returns the first child matching selector, or nil.
	QueryChild(selector string) VisualNode
	Remove()
}
