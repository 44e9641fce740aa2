package hardware

import (
	"fmt"
	"strings"

	"github.com/elastic/go-sysinfo"
	"github.com/jaypipes/ghw"

	"modelpickd/pkg/gpu"
	"modelpickd/pkg/logging"
)

// Info describes the probed host hardware.
type Info struct {
	// GPUName is the free-text name of the selected graphics device, empty
	// when no device could be identified.
	GPUName string `json:"gpuName"`
	// TotalRAMMB is the total host RAM in MB, 0 when unknown.
	TotalRAMMB uint64 `json:"totalRAMMB"`
}

// Probe inspects the host's graphics and memory hardware.
type Probe struct {
	// log is the associated logger.
	log logging.Logger
}

// NewProbe creates a new hardware probe.
func NewProbe(log logging.Logger) *Probe {
	return &Probe{log: log}
}

// Run probes the host. Partial results are returned with a nil error; an
// error is returned only when neither a graphics device nor RAM could be
// read.
func (p *Probe) Run() (*Info, error) {
	info := &Info{}

	name, err := p.gpuName()
	if err != nil {
		p.log.Warnf("Could not probe graphics devices: %s", err)
	} else {
		info.GPUName = name
		p.log.Infof("Detected graphics device: %s", name)
	}

	hostInfo, err := sysinfo.Host()
	if err != nil {
		p.log.Warnf("Could not read host info: %s", err)
	} else {
		ram, err := hostInfo.Memory()
		if err != nil {
			p.log.Warnf("Could not read host RAM size: %s", err)
		} else {
			info.TotalRAMMB = ram.Total / 1024 / 1024
			p.log.Infof("Running on system with %d MB RAM", info.TotalRAMMB)
		}
	}

	if info.GPUName == "" && info.TotalRAMMB == 0 {
		return nil, fmt.Errorf("no usable hardware information")
	}
	return info, nil
}

// gpuName returns the name of the most capable-looking graphics device,
// preferring cards whose vendor is recognized over unidentified ones.
func (p *Probe) gpuName() (string, error) {
	gpus, err := ghw.GPU()
	if err != nil {
		return "", err
	}
	best := ""
	for _, card := range gpus.GraphicsCards {
		if card.DeviceInfo == nil || card.DeviceInfo.Vendor == nil || card.DeviceInfo.Product == nil {
			continue
		}
		name := strings.TrimSpace(card.DeviceInfo.Vendor.Name + " " + card.DeviceInfo.Product.Name)
		if name == "" {
			continue
		}
		if best == "" {
			best = name
		}
		if gpu.DetectVendor(strings.ToLower(name)) != gpu.VendorUnknown {
			return name, nil
		}
	}
	if best == "" {
		return "", fmt.Errorf("no graphics cards found")
	}
	return best, nil
}

// EstimateTier guesses a performance tier from total host RAM. It is used
// only when no explicit tier is configured.
func EstimateTier(totalRAMMB uint64) int {
	switch {
	case totalRAMMB >= 32*1024:
		return 3
	case totalRAMMB >= 16*1024:
		return 2
	case totalRAMMB >= 8*1024:
		return 1
	default:
		return 0
	}
}
