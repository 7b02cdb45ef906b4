// Package shapes declares the narrow capability interfaces of the graphics
// node hierarchy that validators check membership against. The concrete node
// types live with the renderer; this package carries no behavior of its own.
package shapes
