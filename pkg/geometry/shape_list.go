package geometry

import (
	"github.com/df07/go-reference-raytracer/pkg/core"
	"github.com/df07/go-reference-raytracer/pkg/material"
)

// ShapeList is an ordered collection of shapes resolved by linear search.
// It is built once and treated as read-only while rendering.
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list containing the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: append([]Shape(nil), shapes...)}
}

// Add appends a shape. The same shape may be added more than once.
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Clear removes all shapes
func (l *ShapeList) Clear() {
	l.Shapes = nil
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest intersection among all shapes
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
