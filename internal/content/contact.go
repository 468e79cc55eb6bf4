package content

import (
	"net/url"
	"strings"

	"github.com/gccma/gccma/internal/config"
)

// Link is a labelled destination outside the app (web, phone, mail, map).
type Link struct {
	Label string
	Value string // what the user sees
	URL   string // what would be opened
	Icon  string
	Color string
}

// SocialLinks returns the church's social media accounts.
func SocialLinks(c config.ChurchConfig) []Link {
	return []Link{
		{Label: "Facebook", Value: c.Facebook, URL: c.Facebook, Icon: "web", Color: "#1877F2"},
		{Label: "Instagram", Value: c.Instagram, URL: c.Instagram, Icon: "web", Color: "#E4405F"},
		{Label: "YouTube", Value: c.YouTube, URL: c.YouTube, Icon: "live", Color: "#FF0000"},
		{Label: "Twitter", Value: c.Twitter, URL: c.Twitter, Icon: "web", Color: "#1DA1F2"},
	}
}

// ContactInfo returns phone, email, address and website entries with the
// URL each would open.
func ContactInfo(c config.ChurchConfig) []Link {
	return []Link{
		{Label: "Phone", Value: c.Phone, URL: "tel:" + dialable(c.Phone), Icon: "phone"},
		{Label: "Email", Value: c.Email, URL: "mailto:" + c.Email, Icon: "mail"},
		{Label: "Address", Value: c.Address, URL: "https://maps.google.com/?q=" + url.QueryEscape(c.Address), Icon: "church"},
		{Label: "Website", Value: c.Website, URL: websiteURL(c.Website), Icon: "web"},
	}
}

// dialable keeps the leading + and the digits of a phone number.
func dialable(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func websiteURL(site string) string {
	if site == "" || strings.Contains(site, "://") {
		return site
	}
	return "https://" + site
}
