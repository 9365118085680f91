// Package grid implements the combat core's integer tactical grid: position
// arithmetic, Chebyshev distance, Bresenham line-of-effect, area-of-effect
// templates, and an 8-connected A* pathfinder with movement-cost terrain.
//
// Every position is integer-indexed; there is no floating-point coordinate
// anywhere in this package. One cell is 5 feet, matching distance_feet's
// scale factor.
package grid
