package core

import (
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
)

// ExecutePlan applies every action of the plan to the renderer, radar first.
// A failing action is logged and skipped so the other target still renders.
// It returns the number of actions that changed the target.
func ExecutePlan(r contract.Renderer, plan schema.RenderPlan, logger logrus.FieldLogger) int {
	applied := 0
	for _, action := range plan.Actions() {
		ok, err := applyAction(r, action)
		if err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"element": action.ElementID,
				"kind":    action.Kind,
			}).Error("Error applying render action")
			continue
		}
		if ok {
			applied++
		}
	}
	return applied
}

// applyAction dispatches a single action. It reports false for noops.
func applyAction(r contract.Renderer, action schema.Action) (bool, error) {
	switch action.Kind {
	case schema.MountChartAction:
		return true, r.MountChart(action.ElementID, action.Chart)
	case schema.MountWordCloudAction:
		return true, r.MountWordCloud(action.ElementID, action.WordCloud)
	case schema.ShowTextAction:
		return true, r.ShowText(action.ElementID, action.Message)
	default:
		return false, nil
	}
}
