package component

import (
	"math"

	"go-garden-defense/internal/utils"
)

// Camera is the free-fly viewpoint. Yaw 0 looks down -Z; positive yaw turns
// left. Pitch is positive upwards.
type Camera struct {
	Position    utils.Vec3
	Yaw         float64
	Pitch       float64
	Speed       float64 // Units per second
	RotateSpeed float64 // Radians per second
}

// NewCameraLookingAt builds a camera at position facing target.
func NewCameraLookingAt(position, target utils.Vec3, speed, rotateSpeed float64) *Camera {
	dir := target.Sub(position).Normalize()
	return &Camera{
		Position:    position,
		Yaw:         math.Atan2(-dir.X, -dir.Z),
		Pitch:       math.Asin(dir.Y),
		Speed:       speed,
		RotateSpeed: rotateSpeed,
	}
}

// Forward is the unit view direction.
func (c *Camera) Forward() utils.Vec3 {
	cp := math.Cos(c.Pitch)
	return utils.NewVec3(-math.Sin(c.Yaw)*cp, math.Sin(c.Pitch), -math.Cos(c.Yaw)*cp)
}

// GroundForward is Forward projected onto the ground plane.
func (c *Camera) GroundForward() utils.Vec3 {
	return utils.NewVec3(-math.Sin(c.Yaw), 0, -math.Cos(c.Yaw))
}

// GroundLeft is the unit strafe-left direction on the ground plane.
func (c *Camera) GroundLeft() utils.Vec3 {
	return utils.NewVec3(-math.Cos(c.Yaw), 0, math.Sin(c.Yaw))
}

// LookTarget is a point one unit in front of the camera.
func (c *Camera) LookTarget() utils.Vec3 {
	return c.Position.Add(c.Forward())
}
