package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init must run once at startup, before any record is created. Node number
// comes from config so multi-instance deployments do not collide.
func Init(nodeNumber int64) {
	var err error
	node, err = snowflake.NewNode(nodeNumber)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

// GenerateID returns a fresh id on every call. Generation happens per record
// at creation time, never once at schema definition.
func GenerateID() int64 {
	return node.Generate().Int64()
}
