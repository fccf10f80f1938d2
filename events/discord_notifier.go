package events

import (
	"context"
	"fmt"
	"time"

	"github.com/hanksha/club-booking-backend/booking"
	"github.com/hanksha/club-booking-backend/discord"
)

var statusTitles = map[booking.Status]string{
	booking.StatusConfirmed:            "Booking confirmed :white_check_mark:",
	booking.StatusCancelledByCustomer:  "Booking cancelled by customer :negative_squared_cross_mark:",
	booking.StatusCancelledByClub:      "Booking cancelled by club :negative_squared_cross_mark:",
	booking.StatusCompleted:            "Booking completed :checkered_flag:",
	booking.StatusNoShow:               "Customer did not show up :ghost:",
	booking.StatusRejected:             "Reschedule rejected :no_entry:",
	booking.StatusExpired:              "Booking expired :hourglass:",
	booking.StatusRescheduleRequested:  "Reschedule requested :arrows_counterclockwise:",
	booking.StatusCancelledRescheduled: "Booking moved to a new slot :arrow_right:",
}

// DiscordNotifier posts booking events as embeds in a club staff channel.
type DiscordNotifier struct {
	client    discord.DiscordClient
	channelID string
	loc       *time.Location
}

func NewDiscordNotifier(client discord.DiscordClient, channelID string, loc *time.Location) *DiscordNotifier {
	return &DiscordNotifier{client: client, channelID: channelID, loc: loc}
}

func (n *DiscordNotifier) NotifyBookingCreated(ctx context.Context, event booking.BookingCreated) error {
	title := "New booking :calendar:"

	if event.Booking.Status == booking.StatusReschedulePending {
		title = "New reschedule proposal :calendar:"
	}

	embed := n.bookingEmbed(title, event.Booking)
	embed.Fields = append([]discord.EmbedField{{Name: "Service", Value: event.Service.Name, Inline: true}}, embed.Fields...)

	return n.send(ctx, embed)
}

func (n *DiscordNotifier) NotifyBookingStatusUpdated(ctx context.Context, event booking.BookingStatusUpdated) error {
	title, ok := statusTitles[event.NewStatus]

	if !ok {
		title = fmt.Sprintf("Booking is now %v", event.NewStatus)
	}

	return n.send(ctx, n.bookingEmbed(title, event.Booking))
}

func (n *DiscordNotifier) bookingEmbed(title string, b booking.Booking) discord.Embed {
	notes := "None"

	if len(b.Notes) != 0 {
		notes = b.Notes
	}

	return discord.Embed{
		Type:      "rich",
		ChannelID: n.channelID,
		Title:     title,
		Fields: []discord.EmbedField{
			{
				Name:   "Customer",
				Value:  b.CustomerID,
				Inline: true,
			},
			{
				Name:   "Date",
				Value:  fmt.Sprintf("%v %v-%v", b.StartsAt.In(n.loc).Format(time.DateOnly), b.StartTime, b.EndTime),
				Inline: true,
			},
			{
				Name:   "Price",
				Value:  fmt.Sprintf("%.2f", b.TotalPrice),
				Inline: true,
			},
			{
				Name:   "Notes",
				Value:  notes,
				Inline: true,
			},
		},
	}
}

func (n *DiscordNotifier) send(ctx context.Context, embed discord.Embed) error {
	return n.client.SendMessage(ctx, n.channelID, discord.Message{
		Embeds: []discord.Embed{embed},
	})
}
