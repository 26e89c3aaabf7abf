// Package idgen produces unique string identifiers for stored rows.
package idgen

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sony/sonyflake"
)

// Generator hands out globally unique IDs. NextID may fail, e.g. when the
// clock moves backwards or the sequence space is exhausted.
type Generator interface {
	NextID() (string, error)
}

// Epoch is the sonyflake start time shared by every node.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Sonyflake is a Generator backed by github.com/sony/sonyflake.
type Sonyflake struct {
	sf *sonyflake.Sonyflake
}

// NewSonyflake returns a generator for the given node. Nodes sharing a
// database must use distinct ids.
func NewSonyflake(nodeID uint16) (*Sonyflake, error) {
	sf, err := sonyflake.New(sonyflake.Settings{
		StartTime: Epoch,
		MachineID: func() (uint16, error) { return nodeID, nil },
	})
	if err != nil {
		return nil, fmt.Errorf("sonyflake: %w", err)
	}
	return &Sonyflake{sf: sf}, nil
}

func (g *Sonyflake) NextID() (string, error) {
	id, err := g.sf.NextID()
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(id, 10), nil
}
