package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/sigecs/ecs"
	"github.com/plus3/sigecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/sigecs/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and overlays the scene inspector.
type Game struct {
	scene        *ecs.Scene
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin the ImGui frame before the scene update renders inspector windows
	g.imguiBackend.BeginFrame()
	g.scene.Update()
	g.imguiBackend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw the inspector overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Scene Inspector Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	kinds := ecs.NewKinds()
	scene := ecs.NewScene()

	// Gameplay systems go here, then the inspector last so it sees the
	// frame's final state.
	scene.AddSystems(debugui.NewInspectorSystem(scene, 100,
		debugui.NewEntityBrowser(kinds, 100),
		debugui.NewSystemInspector(),
		debugui.NewFrameStats(120),
	))

	game := &Game{
		scene:        scene,
		imguiBackend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
