package driver

import (
	"fmt"

	netcore "github.com/packetkit/netcore"
)

// GetSetInformation reads or writes a single capability flag, spec.md
// section 6's downward-contract "get/set information" entry point. When
// set is true, value's low bit is pushed to hardware and echoed back;
// otherwise the current hardware state is returned unchanged.
func (c *Controller) GetSetInformation(kind InfoKind, set bool, value uint32) (uint32, error) {
	switch kind {
	case InfoPromiscuousMode, InfoChecksumOffload:
	default:
		return 0, fmt.Errorf("netcore: %w: unknown information kind %d", netcore.ErrInvalidParameter, kind)
	}

	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()

	if set {
		enabled := value&1 != 0
		if err := c.dev.SetMode(kind, enabled); err != nil {
			return 0, fmt.Errorf("netcore: %w: setting information: %v", netcore.ErrDeviceIO, err)
		}
	}

	if c.dev.Mode(kind) {
		return 1, nil
	}
	return 0, nil
}
