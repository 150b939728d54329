package notify

import (
	"fmt"
	"html"

	"github.com/google/uuid"

	"github.com/ignatzorin/campus-lostfound/internal/domain/entity"
	"github.com/ignatzorin/campus-lostfound/internal/domain/valueobject"
)

const brand = "AMC Lost & Found"

func idRef(id uuid.UUID) *uuid.UUID {
	return &id
}

func ReportPublished(owner *entity.User, report *entity.LostReport) Request {
	name := html.EscapeString(owner.Name)
	item := html.EscapeString(report.ItemName)

	if !report.IsPublished() {
		return Request{
			Recipient: owner,
			Type:      valueobject.NotificationReportPublished,
			Message:   fmt.Sprintf("Your lost item report for %q has been approved.", report.ItemName),
			RelatedID: idRef(report.ID),
			Email: &Email{
				Subject: "Lost Report Approved: " + report.ItemName,
				Text:    fmt.Sprintf("Hello %s,\n\nYour lost item report for %q has been approved by the %s team.", owner.Name, report.ItemName, brand),
				HTML:    fmt.Sprintf("<p>Hello <b>%s</b>,</p><p>Your lost item report for \"<b>%s</b>\" has been approved by the %s team.</p>", name, item, brand),
			},
		}
	}

	return Request{
		Recipient: owner,
		Type:      valueobject.NotificationReportPublished,
		Message:   fmt.Sprintf("Your lost item report for %q has been published.", report.ItemName),
		RelatedID: idRef(report.ID),
		Email: &Email{
			Subject: "Lost Report Published: " + report.ItemName,
			Text:    fmt.Sprintf("Hello %s,\n\nYour lost item report for %q has been successfully published on %s.", owner.Name, report.ItemName, brand),
			HTML:    fmt.Sprintf("<p>Hello <b>%s</b>,</p><p>Your lost item report for \"<b>%s</b>\" has been successfully published on %s.</p>", name, item, brand),
		},
	}
}

func PrivateReportCreated(admin, owner *entity.User, report *entity.LostReport) Request {
	return Request{
		Recipient: admin,
		Type:      valueobject.NotificationReportCreated,
		Message:   fmt.Sprintf("A private report (ADMIN_ONLY) has been created by %s for %q.", owner.Name, report.ItemName),
		RelatedID: idRef(report.ID),
		Email: &Email{
			Subject: "New Private Report: " + report.ItemName,
			Text: fmt.Sprintf("Hello Admin,\n\nA new private lost report has been submitted by %s (%s).\nItem: %s.\nPlease review it in the admin portal.",
				owner.Name, owner.Email, report.ItemName),
			HTML: fmt.Sprintf("<p>Hello <b>Admin</b>,</p><p>A new private lost report has been submitted by <b>%s</b> (%s).</p><p><b>Item:</b> %s</p><p>Please review it in the admin portal.</p>",
				html.EscapeString(owner.Name), html.EscapeString(owner.Email), html.EscapeString(report.ItemName)),
		},
	}
}

func MatchFound(owner *entity.User, report *entity.LostReport, found *entity.FoundItem) Request {
	return Request{
		Recipient: owner,
		Type:      valueobject.NotificationMatchFound,
		Message:   fmt.Sprintf("A potential match for your lost %q was found: %q", report.ItemName, found.ItemName),
		RelatedID: idRef(found.ID),
		IsMatch:   true,
		Email: &Email{
			Subject: "Potential Match Found: " + report.ItemName,
			Text: fmt.Sprintf("Hello %s,\n\nA potential match for your lost %q has been found. Item: %q. Check it out on the dashboard.",
				owner.Name, report.ItemName, found.ItemName),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p>A potential match for your lost \"<b>%s</b>\" has been found.</p><p><b>Found Item:</b> %s</p><p>Check it out on the dashboard to claim it.</p>",
				html.EscapeString(owner.Name), html.EscapeString(report.ItemName), html.EscapeString(found.ItemName)),
		},
	}
}

// MatchSystemComment - текст служебного комментария на заявке о пропаже.
func MatchSystemComment(found *entity.FoundItem) string {
	return fmt.Sprintf("Someone found this item and reported it as %q. View it here: /found/%s", found.ItemName, found.ID)
}

func ClaimRequested(claimant *entity.User, found *entity.FoundItem) Request {
	return Request{
		Recipient: claimant,
		Type:      valueobject.NotificationClaimRequested,
		Message:   fmt.Sprintf("You have successfully requested a claim for %q.", found.ItemName),
		RelatedID: idRef(found.ID),
		Email: &Email{
			Subject: "Claim Request Submitted: " + found.ItemName,
			Text:    fmt.Sprintf("Hello %s,\n\nYour claim request for %q has been submitted successfully and is under review.", claimant.Name, found.ItemName),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p>Your claim request for \"<b>%s</b>\" has been submitted successfully and is under review.</p>",
				html.EscapeString(claimant.Name), html.EscapeString(found.ItemName)),
		},
	}
}

func ClaimFiledForOwner(owner, claimant *entity.User, found *entity.FoundItem) Request {
	return Request{
		Recipient: owner,
		Type:      valueobject.NotificationClaimRequested,
		Message:   fmt.Sprintf("%s has submitted a claim for the found item %q matched to your report.", claimant.Name, found.ItemName),
		RelatedID: idRef(found.ID),
		Email: &Email{
			Subject: "New Claim Request: " + found.ItemName,
			Text: fmt.Sprintf("Hello %s,\n\n%s has submitted a claim for the found item %q that was matched to your lost report. Please review it in the app.",
				owner.Name, claimant.Name, found.ItemName),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p><b>%s</b> has submitted a claim for the found item \"<b>%s</b>\" that was matched to your lost report.</p><p>Please review it in the application.</p>",
				html.EscapeString(owner.Name), html.EscapeString(claimant.Name), html.EscapeString(found.ItemName)),
		},
	}
}

func ClaimApproved(claimant *entity.User, found *entity.FoundItem, claim *entity.Claim) Request {
	instructions := entity.DefaultPickupInstructions
	if claim.PickupInstructions != nil {
		instructions = *claim.PickupInstructions
	}
	return Request{
		Recipient: claimant,
		Type:      valueobject.NotificationClaimApproved,
		Message:   fmt.Sprintf("Your claim for %q has been approved!", found.ItemName),
		RelatedID: idRef(found.ID),
		Email: &Email{
			Subject: "Claim Approved: " + found.ItemName,
			Text: fmt.Sprintf("Hello %s,\n\nGreat news! Your claim for %q has been approved.\n\nPickup Instructions: %s",
				claimant.Name, found.ItemName, instructions),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p>Great news! Your claim for \"<b>%s</b>\" has been approved.</p><p><b>Pickup Instructions:</b> %s</p>",
				html.EscapeString(claimant.Name), html.EscapeString(found.ItemName), html.EscapeString(instructions)),
		},
	}
}

func ClaimRejected(claimant *entity.User, found *entity.FoundItem) Request {
	return Request{
		Recipient: claimant,
		Type:      valueobject.NotificationClaimRejected,
		Message:   fmt.Sprintf("Your claim for %q was not approved.", found.ItemName),
		RelatedID: idRef(found.ID),
		Email: &Email{
			Subject: "Claim Update: " + found.ItemName,
			Text: fmt.Sprintf("Hello %s,\n\nWe regret to inform you that your claim for %q was not approved. If you have questions, please contact the administrator.",
				claimant.Name, found.ItemName),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p>We regret to inform you that your claim for \"<b>%s</b>\" was not approved.</p><p>If you have questions, please contact the administrator.</p>",
				html.EscapeString(claimant.Name), html.EscapeString(found.ItemName)),
		},
	}
}

func NewComment(recipient, author *entity.User, itemName string, target valueobject.ItemRef) Request {
	return Request{
		Recipient: recipient,
		Type:      valueobject.NotificationNewComment,
		Message:   fmt.Sprintf("%s commented on your post %q.", author.Name, itemName),
		RelatedID: idRef(target.ID),
		Email: &Email{
			Subject: "New Comment on: " + itemName,
			Text:    fmt.Sprintf("Hello %s,\n\n%s has left a comment on your post %q.", recipient.Name, author.Name, itemName),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p><b>%s</b> has left a comment on your post \"<b>%s</b>\".</p>",
				html.EscapeString(recipient.Name), html.EscapeString(author.Name), html.EscapeString(itemName)),
		},
	}
}

func CommentReply(recipient, author *entity.User, itemName string, target valueobject.ItemRef) Request {
	return Request{
		Recipient: recipient,
		Type:      valueobject.NotificationNewComment,
		Message:   fmt.Sprintf("%s replied to your comment on %q.", author.Name, itemName),
		RelatedID: idRef(target.ID),
		Email: &Email{
			Subject: "New Reply on: " + itemName,
			Text:    fmt.Sprintf("Hello %s,\n\n%s has replied to your comment on %q.", recipient.Name, author.Name, itemName),
			HTML: fmt.Sprintf("<p>Hello <b>%s</b>,</p><p><b>%s</b> has replied to your comment on \"<b>%s</b>\".</p>",
				html.EscapeString(recipient.Name), html.EscapeString(author.Name), html.EscapeString(itemName)),
		},
	}
}
