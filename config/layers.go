package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render/update layer the scenes use.
const Default ecs.LayerID = 0
