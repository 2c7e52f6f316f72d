package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigecs/ecs"
)

// SystemInspector lists the scene's systems in execution order with their
// priorities, inbox depths, and timing statistics.
type SystemInspector struct{}

func NewSystemInspector() *SystemInspector {
	return &SystemInspector{}
}

func (si *SystemInspector) Render(scene *ecs.Scene) {
	if !imgui.BeginV("System Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := scene.Stats()
	imgui.Text(fmt.Sprintf("Systems: %d, total executions: %d", stats.SystemCount, stats.TotalExecutions))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Priority")
		imgui.TableSetupColumn("Enabled")
		imgui.TableSetupColumn("Inbox")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(sys.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.Priority))

			imgui.TableNextColumn()
			if sys.Enabled {
				imgui.Text("yes")
			} else {
				imgui.Text("no")
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.InboxDepth))

			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())

			imgui.TableNextColumn()
			imgui.Text(sys.LastDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
