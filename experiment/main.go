// Package main simulates the frame scheduler against a jittery decoder
// so the drop/wait behavior can be eyeballed without a real media file.
// It steps a synthetic 30fps stream through Decide with random decode
// delays and prints a per-frame trace plus totals.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/user/termplay/pkg/player"
)

func main() {
	var (
		frames    = flag.Int("frames", 120, "number of synthetic frames")
		fps       = flag.Float64("fps", 30, "synthetic stream frame rate")
		jitterMs  = flag.Int("jitter", 40, "max decode jitter per frame (ms)")
		stallEach = flag.Int("stall-each", 0, "inject a 300ms stall every N frames (0 disables)")
		seed      = flag.Int64("seed", 1, "random seed")
		noSkip    = flag.Bool("no-skip", false, "disable frame dropping")
	)
	flag.Parse()

	cfg := player.DefaultSyncConfig()
	cfg.AllowFrameSkip = !*noSkip

	rng := rand.New(rand.NewSource(*seed))
	interval := time.Duration(float64(time.Second) / *fps)

	// The simulated clock advances by decode cost and scheduler waits;
	// there is no real sleeping.
	var (
		pos      time.Duration
		drops    int
		rendered int
		dropped  int
		waited   int
		maxLag   time.Duration
	)

	for i := 0; i < *frames; i++ {
		pts := time.Duration(i) * interval

		// Decode cost for this frame: nominal interval plus jitter,
		// plus the occasional long stall.
		cost := interval + time.Duration(rng.Intn(*jitterMs+1))*time.Millisecond - time.Duration(*jitterMs/2)*time.Millisecond
		if *stallEach > 0 && i > 0 && i%*stallEach == 0 {
			cost += 300 * time.Millisecond
		}
		if cost < 0 {
			cost = 0
		}
		pos += cost

		for {
			d := player.Decide(pts, pos, drops, cfg)
			switch d.Action {
			case player.ActionWait:
				pos += d.Delay
				waited++
				continue
			case player.ActionDrop:
				drops++
				dropped++
				fmt.Printf("frame %3d  pts=%-8s pos=%-8s drift=%-8s drop (%d consecutive)\n",
					i, pts.Round(time.Millisecond), pos.Round(time.Millisecond),
					(pts - pos).Round(time.Millisecond), drops)
			case player.ActionRender:
				if lag := pos - pts; lag > maxLag {
					maxLag = lag
				}
				drops = 0
				rendered++
				fmt.Printf("frame %3d  pts=%-8s pos=%-8s drift=%-8s render\n",
					i, pts.Round(time.Millisecond), pos.Round(time.Millisecond),
					(pts - pos).Round(time.Millisecond))
			}
			break
		}
	}

	fmt.Println()
	fmt.Printf("rendered=%d dropped=%d waits=%d maxLag=%s\n",
		rendered, dropped, waited, maxLag.Round(time.Millisecond))
}
