package mermaid

import (
	"fmt"
	"strings"
)

// FlowDirection is the layout direction of a flowchart
type FlowDirection string

const (
	TopBottom  FlowDirection = "TB"
	TopDown    FlowDirection = "TD"
	BottomTop  FlowDirection = "BT"
	RightLeft  FlowDirection = "RL"
	LeftRight  FlowDirection = "LR"
	legacyLeft FlowDirection = "BL"
)

// ParseFlowDirection parses a direction name; the legacy BL spelling maps to RL
func ParseFlowDirection(value string) (FlowDirection, error) {
	direction := FlowDirection(strings.ToUpper(strings.TrimSpace(value)))
	switch direction {
	case TopBottom, TopDown, BottomTop, RightLeft, LeftRight:
		return direction, nil
	case legacyLeft:
		return RightLeft, nil
	case "":
		return TopDown, nil
	}
	return "", fmt.Errorf("unsupported flow direction: %s", value)
}
