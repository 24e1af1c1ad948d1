package domain

import "github.com/yungbote/bakery-api/internal/domain/inventory"

type Bakery = inventory.Bakery
type BakedGood = inventory.BakedGood

// Models lists every persisted record, in migration order.
func Models() []interface{} {
	return []interface{}{
		&Bakery{},
		&BakedGood{},
	}
}
