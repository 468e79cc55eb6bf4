package content

// ChurchAbout describes the church on the Connect screen.
const ChurchAbout = "We are a community of believers committed to growing in our faith and making a positive impact in our world. " +
	"Join us as we worship together, study God's word, and serve our community with love."

// Pastor is a member of the pastoral team.
type Pastor struct {
	Name  string
	Role  string
	About string
}

// PastoralTeam lists the church's pastors.
func PastoralTeam() []Pastor {
	return []Pastor{
		{
			Name:  "Pastor John Smith",
			Role:  "Senior Pastor",
			About: "Pastor John has been serving our congregation for over 15 years, bringing wisdom, compassion, and a heart for God's people.",
		},
	}
}

// Guest is shown on the profile card when nobody is signed in.
const (
	GuestName  = "Guest User"
	GuestEmail = "guest@gccma.org"
)
