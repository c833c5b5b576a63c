// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay displays the demo console in an SDL window. The screen is
// copied to a streaming texture every time the console produces a new frame
// and scaled to fit the window.
package sdlplay

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher6502/demo"
	"github.com/jetsetilly/gopher6502/gui"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/version"
)

const pixelDepth = 4

// SdlPlay implements the gui.GUI interface with SDL.
type SdlPlay struct {
	con    gui.Console
	frames <-chan demo.Frame

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the pixels copied to the texture on every new frame. the alpha channel
	// is set once and never changed
	pixels []byte

	quit     chan struct{}
	quitOnce sync.Once
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// MUST ONLY be called from the main thread.
func NewSdlPlay(con gui.Console, scale int) (*SdlPlay, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		con:    con,
		frames: con.Frames(),
		pixels: make([]byte, demo.Width*demo.Height*pixelDepth),
		quit:   make(chan struct{}),
	}

	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(demo.Width*scale), int32(demo.Height*scale),
		uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy(nil)
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), demo.Width, demo.Height)
	if err != nil {
		scr.Destroy(nil)
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	// key repeat and mouse motion are of no interest
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	logger.Logf(logger.Allow, "sdlplay", "window opened at scale %d", scale)

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// Quit implements the gui.GUI interface.
func (scr *SdlPlay) Quit() <-chan struct{} {
	return scr.quit
}

func (scr *SdlPlay) requestQuit() {
	scr.quitOnce.Do(func() { close(scr.quit) })
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Service() {
	// wait for events for no longer than one millisecond. loop until the
	// event queue is empty
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.requestQuit()

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				break // switch
			}
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				scr.requestQuit()
				break // switch
			}
			if k, ok := gui.KeyCode(sdl.GetKeyName(ev.Keysym.Sym)); ok {
				scr.con.PushKey(k)
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED {
				scr.present()
			}
		}
	}

	select {
	case f, ok := <-scr.frames:
		if !ok {
			scr.frames = nil
			return
		}
		scr.setPixels(&f)
		err := scr.texture.Update(nil, scr.pixels, demo.Width*pixelDepth)
		if err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
			return
		}
		scr.present()
	default:
	}
}

func (scr *SdlPlay) setPixels(f *demo.Frame) {
	for i, v := range f {
		c := demo.PaletteColour(v)
		p := i * pixelDepth
		scr.pixels[p] = c.R
		scr.pixels[p+1] = c.G
		scr.pixels[p+2] = c.B
	}
}

func (scr *SdlPlay) present() {
	_ = scr.renderer.Clear()
	_ = scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()
}
