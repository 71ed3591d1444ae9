package repository

import "batas-backend/models"

// DefaultLaws is the built-in statute list sent to the model with every prompt
func DefaultLaws() []models.RelevantLaw {
	return []models.RelevantLaw{
		{
			Title:       "Prescription and Possession Rights",
			Law:         "Civil Code of the Philippines, Article 1134",
			Description: "Ownership and other real rights over immovable property are acquired by ordinary prescription through possession of ten years.",
			Relevance:   models.LevelHigh,
		},
		{
			Title:       "Extraordinary Prescription",
			Law:         "Civil Code of the Philippines, Article 1137",
			Description: "Ownership and other real rights over immovable property are acquired by extraordinary prescription through uninterrupted adverse possession for thirty years.",
			Relevance:   models.LevelHigh,
		},
		{
			Title:       "Adverse Possession Requirements",
			Law:         "Civil Code of the Philippines, Article 1123",
			Description: "For prescription to run, the possession must be in the concept of owner, public, peaceful, and uninterrupted.",
			Relevance:   models.LevelHigh,
		},
		{
			Title:       "Labor Rights Protection",
			Law:         "Labor Code of the Philippines, Article 279",
			Description: "Security of tenure - employees shall be entitled to security of tenure.",
			Relevance:   models.LevelMedium,
		},
		{
			Title:       "Property Rights",
			Law:         "1987 Philippine Constitution, Article III, Section 1",
			Description: "No person shall be deprived of life, liberty, or property without due process of law.",
			Relevance:   models.LevelHigh,
		},
	}
}

func ptr[T any](v T) *T { return &v }

// DefaultLawyers is the built-in lawyer directory
func DefaultLawyers() []models.Lawyer {
	return []models.Lawyer{
		{
			ID:             "lawyer-1",
			Name:           "Atty. Maria Santos",
			Specialization: "Property Law",
			Location:       "Manila",
			Contact:        "+63 912 345 6789",
			Email:          "maria.santos@lawfirm.ph",
			StartingPrice:  "₱5,000",
			Distance:       "2.5 km",
			Rating:         ptr(4.8),
			Experience:     "15 years",
			Bio:            "A seasoned property law attorney with over 15 years of experience in real estate disputes, land ownership cases, and property rights. Maria has successfully handled hundreds of cases involving adverse possession, property disputes, and land registration matters.",
			Education: []string{
				"Juris Doctor - University of the Philippines College of Law (2008)",
				"Bachelor of Arts in Political Science - Ateneo de Manila University (2004)",
			},
			BarMembership: "Integrated Bar of the Philippines (IBP) - Manila Chapter",
			PracticeAreas: []string{
				"Property Disputes",
				"Land Ownership",
				"Adverse Possession",
				"Real Estate Transactions",
				"Land Registration",
			},
			Languages:       []string{"Filipino", "English", "Tagalog"},
			OfficeAddress:   "123 Legal Plaza, Ermita, Manila 1000",
			ConsultationFee: "₱3,000 (1 hour)",
			Availability:    "Monday - Friday, 9:00 AM - 6:00 PM",
			CasesHandled:    ptr(450),
			SuccessRate:     "87%",
			Latitude:        ptr(14.5826),
			Longitude:       ptr(120.9830),
		},
		{
			ID:             "lawyer-2",
			Name:           "Atty. Juan Dela Cruz",
			Specialization: "Property Law",
			Location:       "Quezon City",
			Contact:        "+63 917 654 3210",
			Email:          "juan.delacruz@lawfirm.ph",
			StartingPrice:  "₱4,500",
			Distance:       "5.2 km",
			Rating:         ptr(4.6),
			Experience:     "12 years",
			Bio:            "Specializing in property law and civil litigation, Juan has built a reputation for thorough legal research and client-focused representation. He has particular expertise in prescription and possession rights cases.",
			Education: []string{
				"Juris Doctor - Ateneo Law School (2011)",
				"Bachelor of Science in Business Administration - De La Salle University (2007)",
			},
			BarMembership: "Integrated Bar of the Philippines (IBP) - Quezon City Chapter",
			PracticeAreas: []string{
				"Property Rights",
				"Civil Litigation",
				"Contract Disputes",
				"Property Transfer",
				"Estate Planning",
			},
			Languages:       []string{"Filipino", "English"},
			OfficeAddress:   "456 QC Business Center, Quezon City 1100",
			ConsultationFee: "₱2,500 (1 hour)",
			Availability:    "Monday - Saturday, 8:00 AM - 7:00 PM",
			CasesHandled:    ptr(320),
			SuccessRate:     "82%",
			Latitude:        ptr(14.6760),
			Longitude:       ptr(121.0437),
		},
		{
			ID:             "lawyer-3",
			Name:           "Atty. Ana Garcia",
			Specialization: "Civil Law",
			Location:       "Makati",
			Contact:        "+63 918 987 6543",
			Email:          "ana.garcia@lawfirm.ph",
			StartingPrice:  "₱6,000",
			Distance:       "8.1 km",
			Rating:         ptr(4.9),
			Experience:     "20 years",
			Bio:            "With two decades of legal practice, Ana Garcia is one of the most respected civil law attorneys in the Philippines. She has extensive experience in complex civil cases and has represented clients in landmark property rights decisions.",
			Education: []string{
				"Juris Doctor - University of the Philippines College of Law (2003)",
				"Master of Laws - Harvard Law School (2005)",
				"Bachelor of Arts in History - UP Diliman (1999)",
			},
			BarMembership: "Integrated Bar of the Philippines (IBP) - Makati Chapter, American Bar Association",
			PracticeAreas: []string{
				"Complex Civil Litigation",
				"Property Law",
				"Constitutional Law",
				"Administrative Law",
				"Appellate Practice",
			},
			Languages:       []string{"Filipino", "English", "Spanish"},
			OfficeAddress:   "789 Ayala Avenue, Makati City 1200",
			ConsultationFee: "₱4,000 (1 hour)",
			Availability:    "Monday - Friday, 10:00 AM - 5:00 PM",
			CasesHandled:    ptr(680),
			SuccessRate:     "91%",
			Latitude:        ptr(14.5547),
			Longitude:       ptr(121.0244),
		},
		{
			ID:             "lawyer-4",
			Name:           "Atty. Roberto Mendoza",
			Specialization: "Property Law",
			Location:       "Pasig",
			Contact:        "+63 915 123 4567",
			Email:          "roberto.mendoza@lawfirm.ph",
			StartingPrice:  "₱3,500",
			Distance:       "12.3 km",
			Rating:         ptr(4.5),
			Experience:     "8 years",
			Bio:            "A dedicated property law attorney committed to helping clients protect their property rights. Roberto specializes in cases involving land disputes, property claims, and real estate matters.",
			Education: []string{
				"Juris Doctor - San Beda College of Law (2015)",
				"Bachelor of Arts in Political Science - University of Santo Tomas (2011)",
			},
			BarMembership: "Integrated Bar of the Philippines (IBP) - Pasig Chapter",
			PracticeAreas: []string{
				"Property Disputes",
				"Land Registration",
				"Real Estate Law",
				"Property Rights",
				"Ejectment Cases",
			},
			Languages:       []string{"Filipino", "English"},
			OfficeAddress:   "321 Ortigas Center, Pasig City 1600",
			ConsultationFee: "₱2,000 (1 hour)",
			Availability:    "Monday - Friday, 9:00 AM - 6:00 PM",
			CasesHandled:    ptr(180),
			SuccessRate:     "79%",
			Latitude:        ptr(14.5869),
			Longitude:       ptr(121.0614),
		},
		{
			ID:             "lawyer-5",
			Name:           "Atty. Liza Fernandez",
			Specialization: "Real Estate Law",
			Location:       "Mandaluyong",
			Contact:        "+63 919 555 1234",
			Email:          "liza.fernandez@lawfirm.ph",
			StartingPrice:  "₱5,500",
			Distance:       "6.7 km",
			Rating:         ptr(4.7),
			Experience:     "14 years",
			Bio:            "An expert in real estate law with extensive experience in property transactions, land disputes, and property rights litigation. Liza is known for her attention to detail and successful resolution of complex property matters.",
			Education: []string{
				"Juris Doctor - University of Santo Tomas Faculty of Civil Law (2009)",
				"Bachelor of Science in Real Estate Management - UST (2005)",
			},
			BarMembership: "Integrated Bar of the Philippines (IBP) - Mandaluyong Chapter",
			PracticeAreas: []string{
				"Real Estate Law",
				"Property Transactions",
				"Land Development",
				"Property Rights",
				"Real Estate Investment",
			},
			Languages:       []string{"Filipino", "English", "Mandarin"},
			OfficeAddress:   "555 EDSA Corner Shaw Blvd, Mandaluyong City 1550",
			ConsultationFee: "₱3,500 (1 hour)",
			Availability:    "Monday - Friday, 8:00 AM - 6:00 PM",
			CasesHandled:    ptr(390),
			SuccessRate:     "85%",
			Latitude:        ptr(14.5814),
			Longitude:       ptr(121.0537),
		},
	}
}
