package banner

import (
	"context"
	"errors"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Rasterizer turns a document into PNG bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc *Document) ([]byte, error)
}

// RodRasterizer renders documents in a headless Chrome, one page per call.
type RodRasterizer struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	closeOnce sync.Once
}

// LaunchRod starts a headless browser. Empty bin lets rod find or download one.
func LaunchRod(bin string) (*RodRasterizer, error) {
	l := launcher.New().Headless(true).NoSandbox(true)
	if bin != "" {
		l = l.Bin(bin)
	}
	url, err := l.Launch()
	if err != nil {
		return nil, errors.New("launching chrome error: " + err.Error())
	}
	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, errors.New("connecting to chrome error: " + err.Error())
	}
	return &RodRasterizer{browser: browser, launcher: l}, nil
}

func (rr *RodRasterizer) Rasterize(ctx context.Context, doc *Document) ([]byte, error) {
	page, err := rr.browser.Context(ctx).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, errors.New("creating page error: " + err.Error())
	}
	defer page.Close()

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             doc.Format.Width,
		Height:            doc.Format.Height,
		DeviceScaleFactor: 1,
	})
	if err != nil {
		return nil, errors.New("setting viewport error: " + err.Error())
	}
	if err = page.SetDocumentContent(doc.HTML); err != nil {
		return nil, errors.New("setting document error: " + err.Error())
	}
	if err = page.WaitLoad(); err != nil {
		return nil, errors.New("waiting for document error: " + err.Error())
	}
	png, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, errors.New("taking screenshot error: " + err.Error())
	}
	return png, nil
}

func (rr *RodRasterizer) Close() error {
	var err error
	rr.closeOnce.Do(func() {
		err = rr.browser.Close()
		rr.launcher.Cleanup()
	})
	return err
}
