package systems

import (
	"math/rand"

	"github.com/automoto/skyball/components"
	cfg "github.com/automoto/skyball/config"
	"github.com/automoto/skyball/persistence"
	"github.com/automoto/skyball/shared/leveldata"
	"github.com/automoto/skyball/systems/factory"
	"github.com/automoto/skyball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Clouds spawns drifting clouds along the level's lanes. A player touching
// one turns it into a ball if there is room for it.
type Clouds struct {
	ecs    *ecs.ECS
	timers *Timers
	rng    *rand.Rand
	level  *leveldata.Level
	store  *persistence.Store // nil means coins aren't kept
	active bool
}

func NewClouds(e *ecs.ECS, timers *Timers, level *leveldata.Level, rng *rand.Rand, store *persistence.Store) *Clouds {
	return &Clouds{ecs: e, timers: timers, rng: rng, level: level, store: store}
}

// Start spawns a cloud every spawn interval until Stop.
func (c *Clouds) Start() {
	if c.active || len(c.level.CloudLanes) == 0 {
		return
	}
	c.active = true
	c.arm()
}

func (c *Clouds) Stop() {
	c.active = false
}

func (c *Clouds) arm() {
	c.timers.ScheduleOnce(cfg.Cloud.SpawnInterval, func() {
		if !c.active {
			return
		}
		c.Spawn()
		c.arm()
	})
}

// Count is the number of clouds in the world.
func (c *Clouds) Count() int {
	n := 0
	tags.Cloud.Each(c.ecs.World, func(*donburi.Entry) { n++ })
	return n
}

// Spawn adds a cloud on a random lane just outside the edge it drifts in
// from. It returns nil when the sky is full or there are no lanes.
func (c *Clouds) Spawn() *donburi.Entry {
	if len(c.level.CloudLanes) == 0 || c.Count() >= cfg.Cloud.MaxClouds {
		return nil
	}
	idx := c.rng.Intn(len(c.level.CloudLanes))
	lane := c.level.CloudLanes[idx]

	b := c.level.Bounds()
	x := b.X - cfg.Cloud.Width
	if lane.Direction < 0 {
		x = b.X + b.W
	}
	return factory.CreateCloud(c.ecs, x, lane.Y, lane.Direction, idx)
}

// Update drifts clouds, drops those that left the world and lets players
// collect the ones they touch.
func (c *Clouds) Update(e *ecs.ECS) {
	dt := FrameDelta()
	b := c.level.Bounds()

	var gone []*donburi.Entry
	tags.Cloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.Cloud.Get(entry)
		obj := components.Object.Get(entry)
		obj.X += cloud.SpeedX * dt
		obj.Update()

		if (cloud.SpeedX > 0 && obj.X > b.X+b.W) || (cloud.SpeedX < 0 && obj.X+obj.W < b.X) {
			gone = append(gone, entry)
		}
	})
	for _, entry := range gone {
		factory.DestroyCloud(e, entry)
	}

	var players []*donburi.Entry
	tags.Player.Each(e.World, func(player *donburi.Entry) {
		if components.State.Get(player).Current() != cfg.Dead {
			players = append(players, player)
		}
	})
	for _, player := range players {
		c.collect(e, player)
	}
}

func (c *Clouds) collect(e *ecs.ECS, player *donburi.Entry) {
	obj := components.Object.Get(player)
	check := obj.Check(0, 0, tags.ResolvCloud)
	if check == nil {
		return
	}

	inv := components.Inventory.Get(player)
	score := components.Score.Get(player)
	for _, cloudObj := range check.ObjectsByTags(tags.ResolvCloud) {
		cloud, ok := cloudObj.Data.(*donburi.Entry)
		if !ok || !cloud.Valid() || !overlaps(obj.Object, cloudObj) {
			continue
		}
		if !inv.AddBall() {
			return
		}
		factory.DestroyCloud(e, cloud)
		score.Score += cfg.Cloud.ScorePerCloud
		score.Collected++
		if c.store != nil {
			c.store.AddCoins(cfg.Cloud.ScorePerCloud)
		}
		BallCollectedEvent.Publish(e.World, BallCollected{Count: inv.Count(), Score: score.Score})
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
