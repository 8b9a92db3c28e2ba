package lockdown

import (
	"context"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub002/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
)

type messagingDoorController struct {
	messenger messaging.MsgContext
}

// NewDoorController returns a DoorController that publishes one
// command message per door on the doors.command topic.
func NewDoorController(messenger messaging.MsgContext) DoorController {
	return &messagingDoorController{messenger: messenger}
}

func (c *messagingDoorController) Lock(ctx context.Context, door types.Door) error {
	return c.messenger.PublishOnTopic(ctx, &DoorCommand{
		DoorID:    door.ID,
		SiteID:    door.SiteID,
		Command:   "lock",
		Timestamp: time.Now().UTC(),
	})
}

func (c *messagingDoorController) Unlock(ctx context.Context, door types.Door) error {
	return c.messenger.PublishOnTopic(ctx, &DoorCommand{
		DoorID:    door.ID,
		SiteID:    door.SiteID,
		Command:   "unlock",
		Timestamp: time.Now().UTC(),
	})
}
