package system

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-garden-defense/internal/config"
	"go-garden-defense/internal/defs"
	"go-garden-defense/internal/entity"
	"go-garden-defense/internal/event"
	"go-garden-defense/internal/types"
	"go-garden-defense/internal/utils"
)

func TestTomatoTowerShootsNearestTarget(t *testing.T) {
	ecs, d, log := newWorld()
	tower := addTower(ecs, defs.TowerTomato, utils.Vec3{})
	addTarget(ecs, utils.NewVec3(5, 0, 0))
	near := addTarget(ecs, utils.NewVec3(2, 0, 0))
	shooting := NewShootingSystem(ecs, d, nop())

	for i := 0; i < 9; i++ {
		shooting.Update(0.1)
		ecs.Flush()
	}
	require.Empty(t, ecs.Projectiles, "must not fire before a full second")

	shooting.Update(0.1)
	ecs.Flush()

	shots := projectiles(ecs)
	require.Len(t, shots, 1)
	assert.True(t, shots[0].Direction.ApproxEqual(utils.NewVec3(2, -0.6, 0), 1e-12), "direction %+v", shots[0].Direction)
	assert.Equal(t, 3.5, shots[0].Speed)

	bullet := entity.SortedIDs(ecs.Projectiles)[0]
	assert.Equal(t, tower, ecs.Parent(bullet))
	assert.Equal(t, config.BulletName, ecs.Names[bullet])
	assert.Equal(t, defs.Lookup(defs.TowerTomato).ProjectileModel, ecs.Models[bullet].Asset)
	assert.Equal(t, config.BulletLifetime, ecs.Lifetimes[bullet].Remaining)
	assert.True(t, ecs.WorldPosition(bullet).ApproxEqual(utils.NewVec3(0, 0.6, 0), 1e-12))

	require.Equal(t, 1, log.count(event.ProjectileFired))
	shot := log.events[0].Data.(event.ShotData)
	assert.Equal(t, near, shot.Target)
	assert.Equal(t, bullet, shot.Projectile)
}

func TestProjectileSpeedFollowsKind(t *testing.T) {
	for _, kind := range defs.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			ecs, d, _ := newWorld()
			addTower(ecs, kind, utils.Vec3{})
			addTarget(ecs, utils.NewVec3(3, 0, 0))
			shooting := NewShootingSystem(ecs, d, nop())

			def := defs.Lookup(kind)
			shooting.Update(def.Cooldown.Seconds())
			ecs.Flush()

			shots := projectiles(ecs)
			require.Len(t, shots, 1)
			assert.Equal(t, def.ProjectileSpeed, shots[0].Speed)
		})
	}
}

func TestCooldownPeriodicity(t *testing.T) {
	steps := []float64{0.1, 0.25, 0.5, 1.0}
	for _, kind := range defs.Kinds() {
		for _, dt := range steps {
			t.Run(fmt.Sprintf("%s/dt=%v", kind, dt), func(t *testing.T) {
				ecs, d, log := newWorld()
				addTower(ecs, kind, utils.Vec3{})
				addTarget(ecs, utils.NewVec3(1, 0, 1))
				shooting := NewShootingSystem(ecs, d, nop())

				period := defs.Lookup(kind).Cooldown
				ticksPerPeriod := int(period.Seconds()/dt + 0.5)
				totalTicks := ticksPerPeriod * 6

				var firedAt []int
				for tick := 1; tick <= totalTicks; tick++ {
					before := log.count(event.ProjectileFired)
					shooting.Update(dt)
					ecs.Flush()
					if log.count(event.ProjectileFired) > before {
						firedAt = append(firedAt, tick)
					}
				}

				require.Len(t, firedAt, 6)
				for i, tick := range firedAt {
					assert.Equal(t, (i+1)*ticksPerPeriod, tick)
				}
				assert.Len(t, ecs.Projectiles, 6)
			})
		}
	}
}

func TestDryFireResetsCooldown(t *testing.T) {
	ecs, d, log := newWorld()
	tower := addTower(ecs, defs.TowerPotato, utils.Vec3{})
	shooting := NewShootingSystem(ecs, d, nop())

	shooting.Update(1.5)
	shooting.Update(0.5)
	ecs.Flush()

	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, 1, log.count(event.TowerDryFired))
	assert.Zero(t, log.count(event.ProjectileFired))
	cooldown := ecs.Towers[tower].Cooldown
	assert.Equal(t, cooldown.Period, cooldown.Remaining)

	// Мишень появилась: следующий выстрел через полный период, не раньше.
	addTarget(ecs, utils.NewVec3(0, 0, 4))
	shooting.Update(1.9)
	ecs.Flush()
	assert.Empty(t, ecs.Projectiles)
	shooting.Update(0.1)
	ecs.Flush()
	assert.Len(t, ecs.Projectiles, 1)
}

func TestLongTickFiresOnce(t *testing.T) {
	ecs, d, log := newWorld()
	tower := addTower(ecs, defs.TowerTomato, utils.Vec3{})
	addTarget(ecs, utils.NewVec3(1, 0, 0))
	shooting := NewShootingSystem(ecs, d, nop())

	shooting.Update(3.2)
	ecs.Flush()

	assert.Equal(t, 1, log.count(event.ProjectileFired))
	assert.Equal(t, 800*time.Millisecond, ecs.Towers[tower].Cooldown.Remaining)
}

func TestShotUsesWorldPositionOfTower(t *testing.T) {
	ecs, d, _ := newWorld()
	addTower(ecs, defs.TowerCabbage, utils.NewVec3(10, 0.8, 0))
	addTarget(ecs, utils.NewVec3(14, 0.4, 2.5))
	shooting := NewShootingSystem(ecs, d, nop())

	shooting.Update(3)
	ecs.Flush()

	shots := projectiles(ecs)
	require.Len(t, shots, 1)
	want := utils.NewVec3(14, 0.4, 2.5).Sub(utils.NewVec3(10, 1.4, 0))
	assert.True(t, shots[0].Direction.ApproxEqual(want, 1e-9))
}

func TestNearestTargetProperty(t *testing.T) {
	rng := utils.NewPRNGService(2024)
	lo, hi := utils.NewVec3(-50, -5, -50), utils.NewVec3(50, 5, 50)
	for round := 0; round < 50; round++ {
		ecs := entity.NewECS()
		n := 1 + rng.Intn(20)
		for i := 0; i < n; i++ {
			SpawnTarget(ecs.Commands(), rng.PointInBox(lo, hi), 0, 1)
		}
		ecs.Flush()
		from := rng.PointInBox(lo, hi)

		id, pos, ok := NearestTarget(ecs, from)
		require.True(t, ok)
		assert.Equal(t, ecs.WorldPosition(id), pos)
		best := pos.Distance(from)
		for other := range ecs.Targets {
			assert.LessOrEqual(t, best, ecs.WorldPosition(other).Distance(from))
		}
	}
}

func TestNearestTargetTieGoesToLowestID(t *testing.T) {
	ecs := entity.NewECS()
	first := addTarget(ecs, utils.NewVec3(1, 0, 0))
	addTarget(ecs, utils.NewVec3(-1, 0, 0))

	id, _, ok := NearestTarget(ecs, utils.Vec3{})
	assert.True(t, ok)
	assert.Equal(t, first, id)
}

func TestNearestTargetEmpty(t *testing.T) {
	id, _, ok := NearestTarget(entity.NewECS(), utils.Vec3{})
	assert.False(t, ok)
	assert.Equal(t, types.NoEntity, id)
}
