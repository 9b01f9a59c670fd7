package content

// Default is the site's canonical dataset.
var Default = &Store{
	BlogPosts:     blogPosts,
	MusicPosts:    musicPosts,
	PersonalBests: personalBests,
	Friends:       friends,
	Training:      training,
}

var blogPosts = []BlogPost{
	{
		CreationDate: MustDate("2023-08-31"),
		Title:        "Why do I run?",
		Desc:         "And why for so long? - It's me-time!",
		Image:        "/assets/whyRun.jpeg",
		Labels:       []string{"running"},
		Post:         "/posts/why-run.md",
		Categories:   []Category{CategoryRunning},
	},
	{
		CreationDate: MustDate("2024-09-15"),
		Title:        "On what we can know",
		Desc: "At a time where mathematicians assumed that complete knowledge would soon be coming, " +
			"Kurt Goedel dropped a bombshell on the limitations of our systems of mathematics and logic.",
		Image:      "/assets/music_gen.png",
		Labels:     []string{"mathematics", "logic"},
		Post:       "/posts/goedel.md",
		Categories: []Category{CategoryScience},
	},
	{
		CreationDate: MustDate("2024-09-15"),
		Title:        "Science is a constant Revolution!",
		Desc: "Thomas Kuhn argues that scientific progress often means breaking with current world models, " +
			"and describes science as a constant evolution.",
		Image:      "/assets/music_gen.png",
		Labels:     []string{"philosophy"},
		Post:       "/posts/kuhn.md",
		Categories: []Category{CategoryScience},
	},
	{
		CreationDate: MustDate("2024-02-15"),
		Title:        "Music Generation with VQ-VAE",
		Desc:         "I implemented a music generator with a Vector Quantized Variational Autoencoder.",
		Image:        "/assets/music_gen.png",
		Labels:       []string{"Deep Learning", "Music", "Generative AI"},
		Post:         "https://github.com/ant-le/TechnoGen/blob/main/README.md",
		Categories:   []Category{CategoryScience},
	},
	{
		CreationDate: MustDate("2022-03-26"),
		Title:        "Austrian Politics - Corruption Scandal",
		Desc: "Bayesian modelling of the election poll corruption charges against a former Austrian chancellor. " +
			"Even after accounting for polling uncertainty the data supports the manipulation hypothesis.",
		Image:      "/assets/election.jpg",
		Labels:     []string{"bayesian statistics", "causal inference", "social science"},
		Post:       "/posts/election-polls.md",
		Categories: []Category{CategoryScience},
	},
	{
		CreationDate: MustDate("2025-07-25"),
		Title:        "Transformer for Theoretical Chemistry",
		Desc: "Equiformerv2 models for atomic surface reconstruction predict in-distribution data accurately " +
			"but fail to generalise out of distribution.",
		Image:      "/assets/chemistry.jpg",
		Labels:     []string{"transformer", "generative AI", "theoretical chemistry"},
		Post:       "/posts/equiformer.md",
		Categories: []Category{CategoryScience},
	},
	{
		CreationDate: MustDate("2025-08-31"),
		Title:        "Training for Berlin Marathon",
		Desc:         "I am currently preparing for the 2025 Berlin marathon.",
		Image:        "/assets/berlin.jpg",
		Labels:       []string{"marathon", "berlin", "pb"},
		Post:         "/posts/berlin2025.md",
		Categories:   []Category{CategoryRunning},
	},
	{
		CreationDate: MustDate("2024-08-31"),
		Title:        "My Favourite Shoe so far",
		Desc:         "The Asics Superblast 2 have been amazing this summer!",
		Image:        "/assets/superblast.webp",
		Labels:       []string{"shoes", "gear", "running"},
		Post:         "/posts/superblast.md",
		Categories:   []Category{CategoryRunning},
	},
}

var musicPosts = []MusicPost{
	{
		BlogPost: BlogPost{
			CreationDate: MustDate("2025-03-06"),
			Title:        "The best opening track of an album ever!",
			Desc:         "There are more recognised albums, but Meddle and especially its first song are very special.",
			Image:        "/assets/meddle.jpg",
			Labels:       []string{"Rock", "Album"},
			Categories:   []Category{CategoryMusic},
		},
		Artist: "Pink Floyd",
		Piece:  "One of These Days",
		IFrame: `<iframe allow="autoplay *; encrypted-media *;" frameborder="0" height="150" src="https://embed.music.apple.com/de/album/one-of-these-days/1065973614?i=1065973615&l=en-GB"></iframe>`,
	},
	{
		BlogPost: BlogPost{
			CreationDate: MustDate("2025-06-06"),
			Title:        "Introducing my Favourite Band",
			Desc:         "I should mention the entire album, but this one is really hitting me.",
			Image:        "/assets/kglw.webp",
			Labels:       []string{"Metal", "Song"},
			Categories:   []Category{CategoryMusic},
		},
		Artist: "King Gizzard and the Lizard Wizard",
		Piece:  "Motor Spirit",
		IFrame: `<iframe allow="autoplay *; encrypted-media *;" frameborder="0" height="150" src="https://embed.music.apple.com/de/album/motor-spirit/1684380069?i=1684380385&l=en-GB"></iframe>`,
	},
	{
		BlogPost: BlogPost{
			CreationDate: MustDate("2024-06-06"),
			Title:        "My favourite electronic song from the past years",
			Desc:         "One of the first electronic songs that really got me. I still cannot get enough.",
			Image:        "/assets/serenity.webp",
			Labels:       []string{"Techno", "Song"},
			Categories:   []Category{CategoryMusic},
		},
		Artist: "Belocca & Nusha",
		Piece:  "Serenity",
		IFrame: `<iframe width="100%" height="166" scrolling="no" frameborder="no" allow="autoplay" src="https://w.soundcloud.com/player/?url=https%3A//api.soundcloud.com/tracks/1358620018"></iframe>`,
	},
	{
		BlogPost: BlogPost{
			CreationDate: MustDate("2025-09-06"),
			Title:        "My favourite album atm",
			Desc:         "It creates an incredible atmosphere and takes you on a journey you won't regret!",
			Image:        "/assets/erase.jpg",
			Labels:       []string{"Rock", "Album"},
			Categories:   []Category{CategoryMusic},
		},
		Artist: "Steven Wilson",
		Piece:  "Hand. Cannot. Erase.",
		IFrame: `<iframe allow="autoplay *; encrypted-media *;" frameborder="0" height="450" src="https://embed.music.apple.com/de/album/hand-cannot-erase-deluxe-edition/947842870?l=en-GB"></iframe>`,
	},
}

var personalBests = []RunningPB{
	{
		EventDate:     MustDate("2024-06-06"),
		EventLocation: "UniRun Vienna, Austria",
		Distance:      Distance5K,
		UsedShoe:      "Puma Deviate Nitro 2",
		Time:          "18:12",
	},
	{
		EventDate:     MustDate("2025-06-22"),
		EventLocation: "Workout Vienna, Austria",
		Distance:      Distance10K,
		UsedShoe:      "Puma Deviate Nitro 2",
		Time:          "39:58",
	},
	{
		EventDate:     MustDate("2025-08-21"),
		EventLocation: "Workout Vienna, Austria",
		Distance:      DistanceHalfMarathon,
		UsedShoe:      "Asics Superblast 2",
		Time:          "1:26:57",
	},
	{
		EventDate:     MustDate("2024-04-15"),
		EventLocation: "Bremen Marathon, Germany",
		Distance:      DistanceMarathon,
		UsedShoe:      "Puma Deviate Nitro 2",
		Time:          "3:05:57",
	},
}

var friends = []Friend{
	{
		Name:  "Kristian Ristic",
		Image: "/assets/kristian.jpg",
		Text:  "Anton is the single best thing ever happened to my life!",
		Role:  "Professional couch potato",
	},
	{
		Name:  "Tilman Kerl",
		Image: "/assets/tilman.jpg",
		Text:  "Some people have study groups. I had Anton.",
		Role:  "Coffee-addicted dude",
	},
	{
		Name:  "Luca Salsetti",
		Image: "/assets/lama.jpg",
		Text:  "He is a genius!",
		Role:  "Just a random dude",
	},
	{
		Name:  "Anton Lechuga",
		Image: "/assets/anton.webp",
		Text:  "I would recommend everyone to work with or talk to him!",
		Role:  "Exceptional Multi-Talent",
	},
}

// moving times assume roughly 5:15 min/km
var training = []TrainingEntry{
	{Date: MustDate("2024-01-01"), Distance: 8.5, MovingTime: 45},
	{Date: MustDate("2024-01-02"), Distance: 0},
	{Date: MustDate("2024-01-03"), Distance: 12.0, MovingTime: 63},
	{Date: MustDate("2024-01-04"), Distance: 6.2, MovingTime: 33},
	{Date: MustDate("2024-01-06"), Distance: 15.0, MovingTime: 79},
	{Date: MustDate("2024-01-07"), Distance: 5.0, MovingTime: 27},
	{Date: MustDate("2024-01-08"), Distance: 10.0, MovingTime: 52},
	{Date: MustDate("2024-01-10"), Distance: 8.5, MovingTime: 44},
	{Date: MustDate("2024-01-11"), Distance: 13.1, MovingTime: 69},
	{Date: MustDate("2024-01-12"), Distance: 6.0, MovingTime: 32},
	{Date: MustDate("2024-01-14"), Distance: 16.0, MovingTime: 85},
	{Date: MustDate("2024-01-15"), Distance: 7.5, MovingTime: 40},
	{Date: MustDate("2024-01-16"), Distance: 9.0, MovingTime: 47},
	{Date: MustDate("2024-01-18"), Distance: 11.0, MovingTime: 58},
	{Date: MustDate("2024-01-19"), Distance: 5.5, MovingTime: 29},
	{Date: MustDate("2024-01-20"), Distance: 14.0, MovingTime: 74},
	{Date: MustDate("2024-01-22"), Distance: 8.0, MovingTime: 42},
	{Date: MustDate("2024-01-23"), Distance: 12.5, MovingTime: 66},
	{Date: MustDate("2024-01-24"), Distance: 6.8, MovingTime: 36},
	{Date: MustDate("2024-01-26"), Distance: 17.0, MovingTime: 90},
	{Date: MustDate("2024-01-27"), Distance: 7.0, MovingTime: 37},
	{Date: MustDate("2024-01-28"), Distance: 9.5, MovingTime: 50},
	{Date: MustDate("2024-01-30"), Distance: 10.5, MovingTime: 55},
	{Date: MustDate("2024-01-31"), Distance: 13.8, MovingTime: 73},
}
