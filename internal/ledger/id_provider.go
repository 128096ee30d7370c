package ledger

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// IDProvider generates the internal stable keys for account and transaction
// rows. Snowflake IDs are time-sortable, which keeps same-timestamp
// transactions ordered by insertion.
type IDProvider interface {
	NextID() int64
}

type idProvider struct {
	snowflakeNode *snowflake.Node
}

func NewIDProvider(nodeID int64) (IDProvider, error) {

	node, err := snowflake.NewNode(nodeID)

	if err != nil {
		return nil, fmt.Errorf("init snowflake node failed: %w", err)
	}

	return &idProvider{
		snowflakeNode: node,
	}, nil
}

func (i *idProvider) NextID() int64 {
	return i.snowflakeNode.Generate().Int64()
}

// AccountNumberProvider draws candidate public account numbers. Uniqueness
// is not its job: the store's unique index decides, and the engine redraws
// on a collision.
type AccountNumberProvider interface {
	Next() string
}

type randomNumberProvider struct{}

func NewAccountNumberProvider() AccountNumberProvider {
	return randomNumberProvider{}
}

// Next returns a 6-digit number in [100000, 999999].
func (randomNumberProvider) Next() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
