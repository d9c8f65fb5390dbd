// Package cedar is the compositing core of a chunked 2D tile-world renderer.
//
// Cedar turns a sparse grid of fixed-size chunks, each a 32x32 grid of tile
// indices, plus a set of positioned two-state sprites ("balls") into final
// pixel colors under a scrolling, zooming camera. It covers the part of a
// world renderer that must be numerically exact: pixel-perfect atlas
// sampling with no seams and no bleed, hard alpha cutout, and one consistent
// coordinate convention shared by the chunk and sprite paths.
//
// # Pipeline
//
// Data flows one way through five stages:
//
//	Camera + instances -> per-corner world/screen positions (coarse stage)
//	-> per-pixel UV (fine stage) -> tile/sprite index decode
//	-> atlas/sheet sample -> color or discard
//
// [Camera] converts world positions to screen or NDC coordinates.
// [ChunkInstance] and [BallInstance] place unit quads in the world.
// [TileSource] maps a cell inside a chunk to an atlas tile index; three
// interchangeable backing stores are provided ([DirectTiles], [PackedTiles],
// [TileImage]). [Atlas] maps a (tile index, intra-tile position) pair to a
// color with edge clamping and cutout. [SpriteSheet] is the simplified
// sibling for single-tile sprites.
//
// # Rendering
//
// Two frontends drive the pipeline.
//
// [Renderer] is a software rasterizer that evaluates every covered pixel on
// the CPU and writes into a [Pixmap]. It is the reference implementation of
// the per-pixel contract and is what the package tests exercise.
//
// [ChunkLayer] and [BallLayer] emit vertex geometry for [Ebitengine],
// resolving tile indices on the CPU and letting the GPU do the sampling.
// [Surface] bridges the two, presenting a software Pixmap through an
// ebiten image.
//
//	cam := cedar.NewCamera(800, 600)
//	tiles := cedar.NewPackedTiles(1)
//	layer := cedar.NewChunkLayer(atlasImage, cedar.AtlasInfo{TilesPerRow: 4, TileW: 8, TileH: 8})
//	layer.Draw(screen, cam, []cedar.ChunkInstance{{X: 0, Y: 0}}, tiles)
//
// # What cedar is not
//
// Asset loading, atlas packing, scene and world management, buffer upload,
// and window/input handling all belong to the host application. Cedar has no
// lighting or shading beyond flat-color atlas lookup with a binary
// transparency cutout, and no persistent state: every draw is a pure
// function of its inputs.
//
// [Ebitengine]: https://ebitengine.org
package cedar
