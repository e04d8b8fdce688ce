package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init 初始化 Snowflake 节点，nodeID 取值 0-1023，多实例部署时需各不相同
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("idgen init failed: %w", err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// New 生成事件 ID，未初始化时 panic
func New() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		panic("snowflake node not initialized")
	}
	return n.Generate().Int64()
}
