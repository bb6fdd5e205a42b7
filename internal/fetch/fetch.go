// Package fetch loads cover images over HTTP with an on-disk response cache
// and a polite inter-request delay, plus a crop/scale helper for fitting
// covers to a target size.
package fetch

import (
	"fmt"
	"image"
	"net/http"
	"sync"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/yyyoichi/httpcache-go"
	"golang.org/x/image/draw"
)

// Client fetches and decodes remote images.
type Client struct {
	http httpcache.Client
}

func New(cacheDir string, interval time.Duration) *Client {
	return &Client{
		http: httpcache.Client{
			Client:  newRateLimited(interval),
			Cache:   httpcache.NewStorageCache(cacheDir),
			Handler: httpcache.NewDefaultHandler(),
		},
	}
}

// Image fetches uri and decodes it as PNG or JPEG.
func (c *Client) Image(uri string) (image.Image, error) {
	resp, err := c.http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: bad status %d", uri, resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Fit center-crops src to the target aspect ratio and scales it to width x
// height with a Catmull-Rom filter.
func Fit(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	srcRect := bounds

	srcRatio := float64(w) / float64(h)
	targetRatio := float64(width) / float64(height)
	if srcRatio > targetRatio {
		// source too wide - center crop
		newWidth := int(float64(h) * targetRatio)
		x := (w - newWidth) / 2
		srcRect = image.Rect(bounds.Min.X+x, bounds.Min.Y, bounds.Min.X+x+newWidth, bounds.Max.Y)
	} else if srcRatio < targetRatio {
		// source too tall - center crop
		newHeight := int(float64(w) / targetRatio)
		y := (h - newHeight) / 2
		srcRect = image.Rect(bounds.Min.X, bounds.Min.Y+y, bounds.Max.X, bounds.Min.Y+y+newHeight)
	}

	dist := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dist, dist.Bounds(), src, srcRect, draw.Over, nil)
	return dist
}

// rateLimited spaces out requests to the same client. Thread-safe.
type rateLimited struct {
	client   *http.Client
	interval time.Duration
	lastCall time.Time
	mu       sync.Mutex
}

func newRateLimited(interval time.Duration) *rateLimited {
	return &rateLimited{
		client:   http.DefaultClient,
		interval: interval,
	}
}

func (r *rateLimited) Do(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if elapsed := time.Since(r.lastCall); elapsed < r.interval {
		time.Sleep(r.interval - elapsed)
	}
	resp, err := r.client.Do(req)
	r.lastCall = time.Now()
	return resp, err
}
