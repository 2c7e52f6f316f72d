package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/sigecs/ecs"
)

// FrameStats plots frame times and shows entity counts.
type FrameStats struct {
	timer         *FrameTimer
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewFrameStats(historyFrames int) *FrameStats {
	return &FrameStats{
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (fs *FrameStats) Render(scene *ecs.Scene) {
	if !imgui.BeginV("Frame Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	fs.frameHistory[fs.frameIndex] = fs.timer.GetDeltaTime() * 1000.0
	fs.frameIndex = (fs.frameIndex + 1) % fs.historyFrames

	imgui.Text(fmt.Sprintf("Live Entities: %d", scene.Entities().Len()))

	var avgFrameTime float32
	for _, ft := range fs.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(fs.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &fs.frameHistory[0], int32(len(fs.frameHistory)))

	imgui.End()
}
