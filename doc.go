// Package bramble is a procedural clockwork-tree toy for [Ebitengine].
//
// Bramble grows a recursive tree of branches, each spinning at its own
// fixed rate, and renders it as batched line segments with circular
// joints. Moving the pointer retunes the global rotation speed by its
// distance and direction from the screen center; clicking replants the
// tree from scratch.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	bramble.Run(bramble.RunConfig{
//		Title: "Clockwork", Width: 1280, Height: 720,
//	})
//
// For full control, create a [Game] and drive it from your own
// [ebiten.Game]:
//
//	type app struct{ g *bramble.Game }
//
//	func (a *app) Update() error              { return a.g.Update() }
//	func (a *app) Draw(s *ebiten.Image)       { a.g.Draw(s) }
//	func (a *app) Layout(w, h int) (int, int) { return a.g.Layout(w, h) }
//
// # Branch trees
//
// Trees are plain values. [Build] grows one from an injectable random
// [Source], and [Update] advances every branch's rotation and re-derives
// its geometry, returning a new tree with identical topology:
//
//	cfg := bramble.Config{Source: bramble.NewSource(42)}
//	tree := bramble.Build(cfg, 1, 1000, 750, 1)
//	tree = bramble.Update(tree, 1000, 750, 1)
//
// [State] wraps a tree with the canvas and pointer bookkeeping that the
// game loop needs: [State.Tick], [State.PointerMove], and [State.Replant].
//
// # Key features
//
// Bramble includes per-level batched stroke rendering, a replant grow-in
// fade (via [gween]), an FPS overlay, synthetic pointer injection and
// JSON-scripted runs for automated visual checks, labeled PNG screenshots,
// and per-frame debug stats on stderr.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package bramble
