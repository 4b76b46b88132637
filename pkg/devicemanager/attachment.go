package devicemanager

import (
	"context"
	"time"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// updateAttachment runs the attachment-point state machine for one
// observation against a device snapshot the caller owns exclusively.
//
// All "recent" comparisons use the entity's observation timestamp, not
// wall clock at merge time, so out-of-order delivery across workers
// resolves deterministically by event time.
func (m *DeviceManager) updateAttachment(ctx context.Context, dev *Device, e *models.Entity) {
	if m.isInternal(ctx, e.SwitchDPID, e.SwitchPort) {
		// Inter-switch links never become host attachment points.
		return
	}

	sp := models.SwitchPort{SwitchDPID: e.SwitchDPID, Port: e.SwitchPort}
	group := m.portChannelGroup(sp)

	// Already current on this exact port: refresh and done.
	for _, ap := range dev.attachments {
		if ap.SwitchPort == sp {
			ap.LastSeen = laterOf(ap.LastSeen, e.LastSeen)
			return
		}
	}

	// Previously superseded port. While blocked and inside the cool-down
	// it must not be treated as a new move; afterwards it is re-promoted.
	var prior *models.AttachmentPoint
	if idx := findAttachment(dev.oldAttachments, sp); idx >= 0 {
		old := dev.oldAttachments[idx]
		if old.Blocked && e.LastSeen.Before(old.BlockedSince.Add(m.cfg.FlapCooldown)) {
			old.LastSeen = laterOf(old.LastSeen, e.LastSeen)
			return
		}

		prior = old
		dev.oldAttachments = append(dev.oldAttachments[:idx], dev.oldAttachments[idx+1:]...)
	}

	current := attachmentsOnSwitch(dev.attachments, e.SwitchDPID)

	// A stale observation must not displace a port that has seen newer
	// traffic; it stays history, and a re-recorded entry keeps the flap
	// flag it carried.
	if newest := newestLastSeen(current); len(current) > 0 && e.LastSeen.Before(newest) {
		ap := &models.AttachmentPoint{
			SwitchPort:  sp,
			LastSeen:    e.LastSeen,
			PortChannel: group,
		}
		if prior != nil {
			ap.Blocked = prior.Blocked
			ap.BlockedSince = prior.BlockedSince
			ap.LastSeen = laterOf(prior.LastSeen, e.LastSeen)
		}
		dev.oldAttachments = append(dev.oldAttachments, ap)

		return
	}

	// Link aggregation: a second port in the same configured channel is
	// not a move. Both stay current and neither is ever blocked.
	if group != "" && len(current) > 0 && allInChannel(current, group) {
		dev.attachments = append(dev.attachments, &models.AttachmentPoint{
			SwitchPort:  sp,
			LastSeen:    e.LastSeen,
			PortChannel: group,
		})
		return
	}

	// Host move: every current port on this switch is superseded. Plain
	// ports are blocked for the cool-down; port-channel members are
	// retired unblocked.
	if len(current) > 0 {
		kept := dev.attachments[:0]
		for _, ap := range dev.attachments {
			if ap.SwitchDPID != e.SwitchDPID {
				kept = append(kept, ap)
				continue
			}

			ap.Blocked = ap.PortChannel == ""
			if ap.Blocked {
				ap.BlockedSince = e.LastSeen
			}
			dev.oldAttachments = append(dev.oldAttachments, ap)
		}
		dev.attachments = kept
	}

	dev.attachments = append(dev.attachments, &models.AttachmentPoint{
		SwitchPort:  sp,
		LastSeen:    e.LastSeen,
		PortChannel: group,
	})
}

func findAttachment(aps []*models.AttachmentPoint, sp models.SwitchPort) int {
	for i, ap := range aps {
		if ap.SwitchPort == sp {
			return i
		}
	}
	return -1
}

func attachmentsOnSwitch(aps []*models.AttachmentPoint, switchDPID uint64) []*models.AttachmentPoint {
	var out []*models.AttachmentPoint
	for _, ap := range aps {
		if ap.SwitchDPID == switchDPID {
			out = append(out, ap)
		}
	}
	return out
}

func allInChannel(aps []*models.AttachmentPoint, channel string) bool {
	for _, ap := range aps {
		if ap.PortChannel != channel {
			return false
		}
	}
	return true
}

func newestLastSeen(aps []*models.AttachmentPoint) time.Time {
	var newest time.Time
	for _, ap := range aps {
		if ap.LastSeen.After(newest) {
			newest = ap.LastSeen
		}
	}
	return newest
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
