package types

// SkillTier groups skill keywords that share a per-hit point value.
type SkillTier struct {
	Name     string
	Keywords []string
	Points   int
}

// CandidateProfile is the fixed candidate configuration the rubric scores
// against. It is an explicit immutable value passed into the evaluator, not
// hidden global state.
type CandidateProfile struct {
	// Role-fit keyword sets, matched against title + description.
	TopRoleKeywords       []string // 10 points per hit
	SecondaryRoleKeywords []string // 8 points per hit

	// Skill-stack keyword tiers.
	SkillTiers []SkillTier

	// Interest industries, keyed by industry name. A posting "mentions" an
	// industry when any keyword appears in its text.
	InterestIndustries map[string][]string

	// Location terms. Subregion terms are checked before the general
	// Seoul/Gyeonggi match so that e.g. 양주 scores as home-area, not as
	// generic Gyeonggi.
	HomeAreaTerms   []string // northern Gyeonggi around the candidate's home
	NorthSeoulTerms []string

	// Signals that the posting targets master's graduates or AI research.
	MastersSignals []string

	// Minimum advertised salary (KRW/year) that earns a bonus.
	SalaryFloor int64
}

// DefaultProfile returns the candidate profile this system is built around:
// an AI/ML master's graduate living in Yangju, northern Gyeonggi.
func DefaultProfile() *CandidateProfile {
	return &CandidateProfile{
		TopRoleKeywords: []string{
			"AI", "Machine Learning", "Deep Learning", "Computer Vision", "Infra",
			"인공지능", "머신러닝", "딥러닝", "컴퓨터 비전", "인프라",
		},
		SecondaryRoleKeywords: []string{
			"Blockchain", "Data Analysis", "Data Science", "Research", "Development",
			"블록체인", "데이터 분석", "데이터 사이언스", "연구", "개발",
		},
		SkillTiers: []SkillTier{
			{
				Name:   "deep-learning",
				Points: 5,
				Keywords: []string{
					"PyTorch", "TensorFlow", "Keras", "YOLO", "CNN", "GCN", "AI", "ML",
					"Deep Learning", "Transformer", "Vision Transformer", "GAN", "ST-GCN",
					"파이토치", "텐서플로우", "트랜스포머", "비전 트랜스포머",
				},
			},
			{
				Name:   "data-analysis",
				Points: 5,
				Keywords: []string{
					"Python", "Pandas", "NumPy", "ETL", "Data Analysis", "Visualization",
					"파이썬", "판다스", "넘파이", "데이터 분석", "시각화",
				},
			},
			{
				Name:   "web",
				Points: 2,
				Keywords: []string{
					"HTML", "CSS", "Vue.js", "Node.js", "Flask", "React", "NextJS", "JavaScript",
				},
			},
			{
				Name:   "tooling",
				Points: 2,
				Keywords: []string{
					"Unreal Engine", "Docker", "Git", "GitHub",
					"언리얼 엔진", "도커", "깃허브",
				},
			},
		},
		InterestIndustries: map[string][]string{
			"finance": {"금융", "은행", "증권", "핀테크", "finance", "fintech", "bank"},
			"defense": {"방산", "방위", "국방", "defense", "defence"},
			"gaming":  {"게임", "game", "gaming"},
			"ai":      {"인공지능", "AI", "artificial intelligence"},
		},
		HomeAreaTerms:   []string{"양주", "의정부", "동두천"},
		NorthSeoulTerms: []string{"노원", "도봉"},
		MastersSignals: []string{
			"석사 우대", "석사우대", "석사 신입", "석사급", "AI 연구", "AI 리서치",
			"master's preferred", "masters preferred", "ai research",
		},
		SalaryFloor: 40_000_000,
	}
}
