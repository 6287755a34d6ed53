package importService

type conferenceLogo struct {
	imageURL      string
	smallImageURL string
}

const wikimedia = "https://upload.wikimedia.org/wikipedia/commons/"

func logo(path, file string) conferenceLogo {
	return conferenceLogo{
		imageURL:      wikimedia + path + "/" + file,
		smallImageURL: wikimedia + "thumb/" + path + "/" + file + "/120px-" + file + ".png",
	}
}

// conferenceLogos is keyed by the provider's conference name.
var conferenceLogos = map[string]conferenceLogo{
	"ACC":               logo("2/2e", "Atlantic_Coast_Conference_logo.svg"),
	"Big Ten":           logo("8/89", "Big_Ten_Conference_logo.svg"),
	"Big 12":            logo("5/5d", "Big_12_Conference_logo.svg"),
	"Pac-12":            logo("3/3b", "Pac-12_logo.svg"),
	"SEC":               logo("2/2e", "Southeastern_Conference_logo.svg"),
	"American Athletic": logo("2/2e", "American_Athletic_Conference_logo.svg"),
	"Conference USA":    logo("2/2e", "Conference_USA_logo.svg"),
	"Mid-American":      logo("2/2e", "Mid-American_Conference_logo.svg"),
	"Mountain West":     logo("2/2e", "Mountain_West_Conference_logo.svg"),
	"Sun Belt":          logo("2/2e", "Sun_Belt_Conference_logo.svg"),
	"FBS Independents":  logo("2/2e", "Independent_logo.svg"),
}
