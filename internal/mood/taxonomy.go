package mood

// taxonomy is the master mood table: 52 moods across 6 categories.
// It is initialized once and must never be mutated after init; all
// lookups hand out copies.
var taxonomy = map[string]Profile{
	// Positive emotions.
	"happy": {
		Key:      "happy",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"upbeat pop", "indie pop", "dance", "feel good", "sunshine"},
			Energy:   EnergyHigh,
			Vibe:     []string{"uplifting", "cheerful", "energizing", "joyful"},
			Keywords: []string{"happy", "feel good", "positive vibes", "good mood"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Comedy", "Romance", "Animation", "Musical"},
			Tone:     ToneLight,
			Themes:   []string{"friendship", "love", "triumph", "joy"},
			Keywords: []string{"feel-good", "heartwarming", "uplifting", "fun"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Romance", "Humor", "Young Adult"},
			Themes:   []string{"happiness", "love", "friendship", "success"},
			Pacing:   PacingModerate,
			Depth:    DepthLight,
			Keywords: []string{"uplifting", "heartwarming", "feel-good", "joyful"},
		},
		AvoidThemes: []string{"tragedy", "dark", "depressing"},
		Strategy:    StrategyMatch,
	},
	"excited": {
		Key:      "excited",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"upbeat pop", "dance", "electronic", "rock", "party"},
			Energy:   EnergyVeryHigh,
			Vibe:     []string{"energizing", "celebratory", "powerful", "fun"},
			Keywords: []string{"party", "pump up", "celebration", "high energy"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Action", "Adventure", "Comedy", "Animation"},
			Tone:     ToneUplifting,
			Themes:   []string{"triumph", "adventure", "success", "excitement"},
			Keywords: []string{"thrilling", "exciting", "entertaining", "inspiring"},
		},
		Book: BookProfile{
			Genres:   []string{"Adventure", "Thriller", "Biography", "Self-Help"},
			Themes:   []string{"achievement", "journey", "success", "ambition"},
			Pacing:   PacingFast,
			Depth:    DepthLight,
			Keywords: []string{"motivating", "success stories", "adventure", "exciting"},
		},
		AvoidThemes: []string{"sad", "slow", "depressing", "boring"},
		Strategy:    StrategyMatch,
	},
	"grateful": {
		Key:      "grateful",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"acoustic", "folk", "indie", "soul", "gospel"},
			Energy:   EnergyMedium,
			Vibe:     []string{"warm", "heartfelt", "uplifting", "peaceful"},
			Keywords: []string{"grateful", "thankful", "blessings", "appreciation"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Biography", "Documentary", "Family"},
			Tone:     ToneUplifting,
			Themes:   []string{"kindness", "family", "community", "appreciation"},
			Keywords: []string{"heartwarming", "inspiring", "meaningful", "touching"},
		},
		Book: BookProfile{
			Genres:   []string{"Memoir", "Self-Help", "Philosophy", "Biography"},
			Themes:   []string{"gratitude", "appreciation", "kindness", "perspective"},
			Pacing:   PacingContemplative,
			Depth:    DepthMedium,
			Keywords: []string{"gratitude", "thankfulness", "appreciation", "mindfulness"},
		},
		AvoidThemes: []string{"cynical", "negative", "ungrateful"},
		Strategy:    StrategyMatch,
	},
	"peaceful": {
		Key:      "peaceful",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"ambient", "classical", "acoustic", "nature sounds", "meditation"},
			Energy:   EnergyLow,
			Vibe:     []string{"calming", "serene", "gentle", "tranquil"},
			Keywords: []string{"peaceful", "calm", "relaxing", "meditation"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Documentary", "Drama", "Animation", "Romance"},
			Tone:     ToneBalanced,
			Themes:   []string{"nature", "harmony", "simplicity", "tranquility"},
			Keywords: []string{"peaceful", "serene", "contemplative", "gentle"},
		},
		Book: BookProfile{
			Genres:   []string{"Poetry", "Philosophy", "Nature", "Fiction"},
			Themes:   []string{"peace", "mindfulness", "nature", "harmony"},
			Pacing:   PacingSlow,
			Depth:    DepthMedium,
			Keywords: []string{"peaceful", "calm", "serene", "mindfulness"},
		},
		AvoidThemes: []string{"violent", "chaotic", "intense", "stressful"},
		Strategy:    StrategyMatch,
	},
	"confident": {
		Key:      "confident",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"hip hop", "rock", "electronic", "pop", "power"},
			Energy:   EnergyHigh,
			Vibe:     []string{"powerful", "empowering", "bold", "strong"},
			Keywords: []string{"confidence", "powerful", "boss", "unstoppable"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Action", "Biography", "Drama", "Sport"},
			Tone:     ToneUplifting,
			Themes:   []string{"empowerment", "success", "overcoming", "strength"},
			Keywords: []string{"empowering", "inspiring", "triumphant", "bold"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Biography", "Business", "Psychology"},
			Themes:   []string{"confidence", "empowerment", "success", "leadership"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"confidence", "empowerment", "success", "strength"},
		},
		AvoidThemes: []string{"defeat", "weakness", "failure"},
		Strategy:    StrategyMatch,
	},
	"inspired": {
		Key:      "inspired",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"classical", "epic", "orchestral", "indie folk", "cinematic"},
			Energy:   EnergyMedium,
			Vibe:     []string{"inspiring", "uplifting", "powerful", "creative"},
			Keywords: []string{"inspiring", "motivational", "creative", "epic"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Biography", "Drama", "Documentary", "Adventure"},
			Tone:     ToneUplifting,
			Themes:   []string{"achievement", "creativity", "innovation", "transformation"},
			Keywords: []string{"inspiring", "motivational", "transformative", "powerful"},
		},
		Book: BookProfile{
			Genres:   []string{"Biography", "Self-Help", "Philosophy", "History"},
			Themes:   []string{"inspiration", "creativity", "innovation", "achievement"},
			Pacing:   PacingModerate,
			Depth:    DepthDeep,
			Keywords: []string{"inspiring", "motivational", "creative", "wisdom"},
		},
		AvoidThemes: []string{"pessimistic", "defeat", "cynical"},
		Strategy:    StrategyMatch,
	},
	"playful": {
		Key:      "playful",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"indie pop", "funk", "dance", "quirky", "upbeat"},
			Energy:   EnergyHigh,
			Vibe:     []string{"fun", "lighthearted", "cheerful", "carefree"},
			Keywords: []string{"fun", "playful", "quirky", "lighthearted"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Comedy", "Animation", "Adventure", "Family"},
			Tone:     ToneLight,
			Themes:   []string{"fun", "adventure", "humor", "whimsy"},
			Keywords: []string{"funny", "lighthearted", "entertaining", "playful"},
		},
		Book: BookProfile{
			Genres:   []string{"Humor", "Fiction", "Young Adult", "Graphic Novels"},
			Themes:   []string{"fun", "adventure", "humor", "whimsy"},
			Pacing:   PacingFast,
			Depth:    DepthLight,
			Keywords: []string{"funny", "lighthearted", "entertaining", "fun"},
		},
		AvoidThemes: []string{"serious", "heavy", "dark"},
		Strategy:    StrategyMatch,
	},
	"content": {
		Key:      "content",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"acoustic", "indie folk", "chill", "soft rock", "jazz"},
			Energy:   EnergyMedium,
			Vibe:     []string{"comfortable", "warm", "relaxed", "satisfied"},
			Keywords: []string{"content", "relaxed", "comfortable", "chill"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Romance", "Comedy", "Documentary"},
			Tone:     ToneBalanced,
			Themes:   []string{"satisfaction", "comfort", "simplicity", "harmony"},
			Keywords: []string{"comfortable", "satisfying", "pleasant", "easy"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Memoir", "Poetry", "Essays"},
			Themes:   []string{"contentment", "simplicity", "appreciation", "peace"},
			Pacing:   PacingSlow,
			Depth:    DepthMedium,
			Keywords: []string{"comfortable", "satisfying", "peaceful", "reflective"},
		},
		AvoidThemes: []string{"chaotic", "intense", "disturbing"},
		Strategy:    StrategyMatch,
	},
	"loving": {
		Key:      "loving",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"r&b", "soul", "romantic", "acoustic", "indie"},
			Energy:   EnergyLow,
			Vibe:     []string{"romantic", "warm", "tender", "affectionate"},
			Keywords: []string{"love", "romantic", "intimate", "tender"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Romance", "Drama", "Comedy"},
			Tone:     ToneLight,
			Themes:   []string{"love", "romance", "connection", "intimacy"},
			Keywords: []string{"romantic", "heartwarming", "sweet", "touching"},
		},
		Book: BookProfile{
			Genres:   []string{"Romance", "Fiction", "Poetry", "Memoir"},
			Themes:   []string{"love", "romance", "connection", "passion"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"romantic", "love", "heartwarming", "tender"},
		},
		AvoidThemes: []string{"heartbreak", "betrayal", "cynical"},
		Strategy:    StrategyMatch,
	},
	"proud": {
		Key:      "proud",
		Category: CategoryPositive,
		Music: MusicProfile{
			Genres:   []string{"orchestral", "rock", "hip hop", "epic", "triumphant"},
			Energy:   EnergyHigh,
			Vibe:     []string{"triumphant", "powerful", "celebratory", "victorious"},
			Keywords: []string{"triumph", "victory", "success", "achievement"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Biography", "Sport", "Drama", "Documentary"},
			Tone:     ToneUplifting,
			Themes:   []string{"achievement", "success", "overcoming", "triumph"},
			Keywords: []string{"inspiring", "triumphant", "victorious", "powerful"},
		},
		Book: BookProfile{
			Genres:   []string{"Biography", "Self-Help", "History", "Business"},
			Themes:   []string{"achievement", "success", "pride", "accomplishment"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"success", "achievement", "inspiring", "triumphant"},
		},
		AvoidThemes: []string{"failure", "defeat", "humiliation"},
		Strategy:    StrategyMatch,
	},

	// Negative emotions.
	"sad": {
		Key:      "sad",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"sad", "acoustic", "indie folk", "piano", "melancholic"},
			Energy:   EnergyLow,
			Vibe:     []string{"melancholic", "emotional", "somber", "heartfelt"},
			Keywords: []string{"sad", "crying", "emotional", "heartbreak"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Romance", "Animation"},
			Tone:     ToneSerious,
			Themes:   []string{"loss", "grief", "healing", "catharsis"},
			Keywords: []string{"emotional", "moving", "cathartic", "poignant"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Literary Fiction", "Poetry", "Memoir"},
			Themes:   []string{"sadness", "loss", "healing", "human condition"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"emotional", "moving", "cathartic", "healing"},
		},
		AvoidThemes: []string{"superficial", "overly cheerful"},
		Strategy:    StrategyProcess,
	},
	"anxious": {
		Key:      "anxious",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"ambient", "lo-fi", "classical", "meditation", "calm"},
			Energy:   EnergyVeryLow,
			Vibe:     []string{"calming", "soothing", "peaceful", "gentle"},
			Keywords: []string{"anxiety relief", "calming", "meditation", "peaceful"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Animation", "Comedy", "Documentary", "Family"},
			Tone:     ToneLight,
			Themes:   []string{"comfort", "safety", "reassurance", "peace"},
			Keywords: []string{"comforting", "gentle", "safe", "predictable"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Fiction", "Poetry", "Meditation"},
			Themes:   []string{"anxiety", "mindfulness", "peace", "grounding"},
			Pacing:   PacingSlow,
			Depth:    DepthMedium,
			Keywords: []string{"anxiety", "calm", "mindfulness", "peace"},
		},
		AvoidThemes: []string{"thriller", "suspense", "horror", "chaos"},
		Strategy:    StrategyUplift,
	},
	"stressed": {
		Key:      "stressed",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"ambient", "lo-fi", "acoustic", "classical", "chill"},
			Energy:   EnergyLow,
			Vibe:     []string{"calming", "peaceful", "soothing", "gentle"},
			Keywords: []string{"stress relief", "deep focus", "calm", "meditation"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Comedy", "Animation", "Drama"},
			Tone:     ToneLight,
			Themes:   []string{"feel-good", "comfort", "low-stakes", "uplifting"},
			Keywords: []string{"relaxing", "heartwarming", "gentle"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Fiction", "Poetry"},
			Themes:   []string{"mindfulness", "rest", "simplicity", "balance"},
			Pacing:   PacingContemplative,
			Depth:    DepthMedium,
			Keywords: []string{"stress management", "calm", "peace"},
		},
		AvoidThemes: []string{"intense", "dark", "complex plots"},
		Strategy:    StrategyUplift,
	},
	"angry": {
		Key:      "angry",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"rock", "metal", "punk", "aggressive", "intense"},
			Energy:   EnergyVeryHigh,
			Vibe:     []string{"powerful", "intense", "cathartic", "aggressive"},
			Keywords: []string{"anger", "intense", "power", "release"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Action", "Thriller", "Drama"},
			Tone:     ToneIntense,
			Themes:   []string{"justice", "revenge", "overcoming", "empowerment"},
			Keywords: []string{"intense", "powerful", "cathartic", "justice"},
		},
		Book: BookProfile{
			Genres:   []string{"Thriller", "Fiction", "Biography", "Self-Help"},
			Themes:   []string{"justice", "anger management", "empowerment", "transformation"},
			Pacing:   PacingFast,
			Depth:    DepthMedium,
			Keywords: []string{"anger", "justice", "empowerment", "cathartic"},
		},
		AvoidThemes: []string{"passive", "weak", "submissive"},
		Strategy:    StrategyChannel,
	},
	"lonely": {
		Key:      "lonely",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"indie", "acoustic", "singer-songwriter", "sad", "soul"},
			Energy:   EnergyLow,
			Vibe:     []string{"melancholic", "intimate", "emotional", "reflective"},
			Keywords: []string{"lonely", "alone", "solitude", "connection"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Romance", "Comedy", "Animation"},
			Tone:     ToneBalanced,
			Themes:   []string{"connection", "friendship", "belonging", "community"},
			Keywords: []string{"connection", "friendship", "warmth", "belonging"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Romance", "Memoir", "Self-Help"},
			Themes:   []string{"loneliness", "connection", "belonging", "friendship"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"loneliness", "connection", "friendship", "belonging"},
		},
		AvoidThemes: []string{"isolation", "abandonment", "despair"},
		Strategy:    StrategyProcess,
	},
	"heartbroken": {
		Key:      "heartbroken",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"sad", "breakup", "emotional", "soul", "r&b"},
			Energy:   EnergyLow,
			Vibe:     []string{"heartfelt", "emotional", "cathartic", "healing"},
			Keywords: []string{"heartbreak", "breakup", "sad love", "healing"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Romance", "Drama", "Comedy"},
			Tone:     ToneBalanced,
			Themes:   []string{"heartbreak", "healing", "self-discovery", "growth"},
			Keywords: []string{"emotional", "cathartic", "healing", "moving on"},
		},
		Book: BookProfile{
			Genres:   []string{"Romance", "Fiction", "Self-Help", "Poetry"},
			Themes:   []string{"heartbreak", "healing", "recovery", "resilience"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"heartbreak", "healing", "moving on", "recovery"},
		},
		AvoidThemes: []string{"toxic relationships", "betrayal", "cynical"},
		Strategy:    StrategyProcess,
	},
	"disappointed": {
		Key:      "disappointed",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"indie", "acoustic", "melancholic", "soft rock", "alternative"},
			Energy:   EnergyLow,
			Vibe:     []string{"reflective", "somber", "hopeful", "gentle"},
			Keywords: []string{"disappointed", "let down", "reflective", "hopeful"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Biography", "Comedy"},
			Tone:     ToneBalanced,
			Themes:   []string{"resilience", "overcoming", "hope", "growth"},
			Keywords: []string{"inspiring", "hopeful", "uplifting", "resilient"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Biography", "Fiction", "Philosophy"},
			Themes:   []string{"disappointment", "resilience", "perspective", "growth"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"resilience", "overcoming", "hope", "perspective"},
		},
		AvoidThemes: []string{"failure", "giving up", "pessimistic"},
		Strategy:    StrategyUplift,
	},
	"guilty": {
		Key:      "guilty",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"acoustic", "indie folk", "melancholic", "soft", "reflective"},
			Energy:   EnergyLow,
			Vibe:     []string{"reflective", "somber", "contemplative", "gentle"},
			Keywords: []string{"regret", "reflection", "forgiveness", "healing"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Biography"},
			Tone:     ToneSerious,
			Themes:   []string{"redemption", "forgiveness", "growth", "learning"},
			Keywords: []string{"redemptive", "thoughtful", "meaningful", "forgiving"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Philosophy", "Self-Help", "Memoir"},
			Themes:   []string{"guilt", "redemption", "forgiveness", "growth"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"guilt", "redemption", "forgiveness", "self-compassion"},
		},
		AvoidThemes: []string{"judgmental", "harsh", "unforgiving"},
		Strategy:    StrategyProcess,
	},
	"jealous": {
		Key:      "jealous",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"r&b", "soul", "alternative", "emotional", "intense"},
			Energy:   EnergyMedium,
			Vibe:     []string{"intense", "emotional", "powerful", "raw"},
			Keywords: []string{"jealousy", "emotional", "intense", "raw"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Thriller", "Romance"},
			Tone:     ToneDark,
			Themes:   []string{"self-worth", "confidence", "overcoming", "growth"},
			Keywords: []string{"intense", "emotional", "transformative", "powerful"},
		},
		Book: BookProfile{
			Genres:   []string{"Psychology", "Self-Help", "Fiction", "Memoir"},
			Themes:   []string{"jealousy", "self-worth", "confidence", "security"},
			Pacing:   PacingModerate,
			Depth:    DepthDeep,
			Keywords: []string{"jealousy", "self-worth", "confidence", "security"},
		},
		AvoidThemes: []string{"comparison", "inadequacy"},
		Strategy:    StrategyProcess,
	},
	"embarrassed": {
		Key:      "embarrassed",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"chill", "lo-fi", "indie", "soft", "comforting"},
			Energy:   EnergyLow,
			Vibe:     []string{"comforting", "gentle", "reassuring", "calm"},
			Keywords: []string{"comfort", "reassuring", "gentle", "calm"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Comedy", "Drama", "Animation"},
			Tone:     ToneLight,
			Themes:   []string{"acceptance", "humor", "resilience", "growth"},
			Keywords: []string{"relatable", "comforting", "lighthearted", "accepting"},
		},
		Book: BookProfile{
			Genres:   []string{"Humor", "Self-Help", "Memoir", "Fiction"},
			Themes:   []string{"embarrassment", "acceptance", "humor", "resilience"},
			Pacing:   PacingModerate,
			Depth:    DepthLight,
			Keywords: []string{"embarrassment", "acceptance", "humor", "relatable"},
		},
		AvoidThemes: []string{"humiliation", "shame", "judgment"},
		Strategy:    StrategyUplift,
	},
	"afraid": {
		Key:      "afraid",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"ambient", "calming", "soft", "meditation", "peaceful"},
			Energy:   EnergyVeryLow,
			Vibe:     []string{"soothing", "safe", "calming", "reassuring"},
			Keywords: []string{"calm", "safe", "peaceful", "reassuring"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Animation", "Comedy", "Family", "Documentary"},
			Tone:     ToneLight,
			Themes:   []string{"safety", "courage", "overcoming", "hope"},
			Keywords: []string{"comforting", "reassuring", "hopeful", "safe"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Fiction", "Biography", "Philosophy"},
			Themes:   []string{"courage", "fear", "resilience", "safety"},
			Pacing:   PacingSlow,
			Depth:    DepthMedium,
			Keywords: []string{"courage", "fear", "overcoming", "resilience"},
		},
		AvoidThemes: []string{"horror", "thriller", "scary", "dangerous"},
		Strategy:    StrategyUplift,
	},
	"hopeless": {
		Key:      "hopeless",
		Category: CategoryNegative,
		Music: MusicProfile{
			Genres:   []string{"ambient", "classical", "soft", "hopeful", "uplifting"},
			Energy:   EnergyLow,
			Vibe:     []string{"gentle", "hopeful", "uplifting", "comforting"},
			Keywords: []string{"hope", "uplifting", "healing", "gentle"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Biography", "Documentary"},
			Tone:     ToneUplifting,
			Themes:   []string{"hope", "resilience", "overcoming", "triumph"},
			Keywords: []string{"inspiring", "hopeful", "uplifting", "resilient"},
		},
		Book: BookProfile{
			Genres:   []string{"Biography", "Self-Help", "Philosophy", "Fiction"},
			Themes:   []string{"hope", "resilience", "meaning", "recovery"},
			Pacing:   PacingModerate,
			Depth:    DepthDeep,
			Keywords: []string{"hope", "resilience", "inspiring", "meaning"},
		},
		AvoidThemes: []string{"despair", "defeat", "dark", "pessimistic"},
		Strategy:    StrategyUplift,
	},

	// Energy states.
	"energetic": {
		Key:      "energetic",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"electronic", "rock", "hip hop", "workout", "dance"},
			Energy:   EnergyVeryHigh,
			Vibe:     []string{"energizing", "powerful", "intense", "motivating"},
			Keywords: []string{"workout", "pump up", "energy", "motivation"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Action", "Adventure", "Thriller", "Sport"},
			Tone:     ToneIntense,
			Themes:   []string{"action", "adventure", "competition", "excitement"},
			Keywords: []string{"action-packed", "thrilling", "fast-paced", "exciting"},
		},
		Book: BookProfile{
			Genres:   []string{"Thriller", "Action", "Adventure", "Science Fiction"},
			Themes:   []string{"action", "adventure", "intensity", "challenge"},
			Pacing:   PacingFast,
			Depth:    DepthLight,
			Keywords: []string{"fast-paced", "action", "thriller", "exciting"},
		},
		AvoidThemes: []string{"slow", "melancholy", "passive"},
		Strategy:    StrategyMatch,
	},
	"tired": {
		Key:      "tired",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"ambient", "lo-fi", "chill", "soft", "calm"},
			Energy:   EnergyVeryLow,
			Vibe:     []string{"relaxing", "gentle", "soothing", "peaceful"},
			Keywords: []string{"sleep", "rest", "relaxing", "gentle"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Animation", "Comedy", "Documentary", "Family"},
			Tone:     ToneLight,
			Themes:   []string{"comfort", "simplicity", "ease", "gentle"},
			Keywords: []string{"easy", "relaxing", "comforting", "light"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Poetry", "Humor", "Short Stories"},
			Themes:   []string{"rest", "comfort", "simplicity", "ease"},
			Pacing:   PacingSlow,
			Depth:    DepthLight,
			Keywords: []string{"easy read", "light", "comforting", "short"},
		},
		AvoidThemes: []string{"intense", "demanding", "complex", "stressful"},
		Strategy:    StrategyMatch,
	},
	"restless": {
		Key:      "restless",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"alternative", "indie rock", "electronic", "experimental", "dynamic"},
			Energy:   EnergyHigh,
			Vibe:     []string{"dynamic", "interesting", "varied", "stimulating"},
			Keywords: []string{"dynamic", "varied", "interesting", "engaging"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Thriller", "Mystery", "Science Fiction", "Adventure"},
			Tone:     ToneBalanced,
			Themes:   []string{"mystery", "exploration", "intrigue", "discovery"},
			Keywords: []string{"engaging", "intriguing", "captivating", "mysterious"},
		},
		Book: BookProfile{
			Genres:   []string{"Mystery", "Thriller", "Science Fiction", "Adventure"},
			Themes:   []string{"mystery", "exploration", "discovery", "intrigue"},
			Pacing:   PacingFast,
			Depth:    DepthMedium,
			Keywords: []string{"page-turner", "engaging", "intriguing", "captivating"},
		},
		AvoidThemes: []string{"boring", "predictable", "slow", "mundane"},
		Strategy:    StrategyChannel,
	},
	"sluggish": {
		Key:      "sluggish",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"chill", "lo-fi", "soft rock", "acoustic", "ambient"},
			Energy:   EnergyLow,
			Vibe:     []string{"gentle", "uplifting", "easy", "comforting"},
			Keywords: []string{"easy", "gentle", "uplifting", "comfortable"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Comedy", "Animation", "Romance", "Documentary"},
			Tone:     ToneLight,
			Themes:   []string{"motivation", "gentle energy", "uplifting", "comfort"},
			Keywords: []string{"light", "uplifting", "easy", "motivating"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Self-Help", "Humor", "Graphic Novels"},
			Themes:   []string{"motivation", "energy", "simplicity", "inspiration"},
			Pacing:   PacingModerate,
			Depth:    DepthLight,
			Keywords: []string{"motivating", "easy", "uplifting", "energizing"},
		},
		AvoidThemes: []string{"heavy", "demanding", "dark"},
		Strategy:    StrategyUplift,
	},
	"hyper": {
		Key:      "hyper",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"electronic", "dance", "fast", "intense", "high-energy"},
			Energy:   EnergyVeryHigh,
			Vibe:     []string{"intense", "fast", "energetic", "powerful"},
			Keywords: []string{"high energy", "intense", "fast", "powerful"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Action", "Thriller", "Adventure", "Comedy"},
			Tone:     ToneIntense,
			Themes:   []string{"action", "excitement", "adventure", "energy"},
			Keywords: []string{"fast-paced", "intense", "action-packed", "exciting"},
		},
		Book: BookProfile{
			Genres:   []string{"Thriller", "Action", "Science Fiction", "Adventure"},
			Themes:   []string{"action", "intensity", "excitement", "speed"},
			Pacing:   PacingFast,
			Depth:    DepthLight,
			Keywords: []string{"fast-paced", "action", "intense", "exciting"},
		},
		AvoidThemes: []string{"slow", "calm", "boring"},
		Strategy:    StrategyChannel,
	},
	"burnt_out": {
		Key:      "burnt_out",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"ambient", "meditation", "nature sounds", "soft", "healing"},
			Energy:   EnergyVeryLow,
			Vibe:     []string{"healing", "restorative", "gentle", "peaceful"},
			Keywords: []string{"recovery", "healing", "rest", "restoration"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Documentary", "Animation", "Comedy", "Nature"},
			Tone:     ToneLight,
			Themes:   []string{"recovery", "rest", "simplicity", "peace"},
			Keywords: []string{"restorative", "gentle", "peaceful", "healing"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Memoir", "Poetry", "Philosophy"},
			Themes:   []string{"burnout", "recovery", "balance", "self-care"},
			Pacing:   PacingSlow,
			Depth:    DepthMedium,
			Keywords: []string{"burnout", "recovery", "self-care", "healing"},
		},
		AvoidThemes: []string{"demanding", "stressful", "intense", "work"},
		Strategy:    StrategyUplift,
	},
	"mellow": {
		Key:      "mellow",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"jazz", "chill", "acoustic", "soft rock", "indie"},
			Energy:   EnergyLow,
			Vibe:     []string{"relaxed", "smooth", "easy", "comfortable"},
			Keywords: []string{"mellow", "chill", "relaxed", "smooth"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Romance", "Comedy", "Documentary"},
			Tone:     ToneBalanced,
			Themes:   []string{"ease", "comfort", "simplicity", "contentment"},
			Keywords: []string{"relaxed", "easy", "smooth", "comfortable"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Poetry", "Essays", "Memoir"},
			Themes:   []string{"ease", "reflection", "simplicity", "contentment"},
			Pacing:   PacingSlow,
			Depth:    DepthMedium,
			Keywords: []string{"relaxed", "easy", "reflective", "comfortable"},
		},
		AvoidThemes: []string{"intense", "chaotic", "demanding"},
		Strategy:    StrategyMatch,
	},
	"drowsy": {
		Key:      "drowsy",
		Category: CategoryEnergy,
		Music: MusicProfile{
			Genres:   []string{"ambient", "sleep", "soft", "meditation", "calm"},
			Energy:   EnergyVeryLow,
			Vibe:     []string{"soothing", "gentle", "peaceful", "sleepy"},
			Keywords: []string{"sleep", "bedtime", "lullaby", "gentle"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Animation", "Documentary", "Nature"},
			Tone:     ToneLight,
			Themes:   []string{"peaceful", "gentle", "calming", "simple"},
			Keywords: []string{"gentle", "soothing", "peaceful", "quiet"},
		},
		Book: BookProfile{
			Genres:   []string{"Poetry", "Short Stories", "Fiction", "Essays"},
			Themes:   []string{"peace", "rest", "dreams", "comfort"},
			Pacing:   PacingVerySlow,
			Depth:    DepthLight,
			Keywords: []string{"bedtime", "gentle", "peaceful", "short"},
		},
		AvoidThemes: []string{"exciting", "intense", "scary", "stimulating"},
		Strategy:    StrategyMatch,
	},

	// Social / relational.
	"social": {
		Key:      "social",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"pop", "dance", "party", "funk", "upbeat"},
			Energy:   EnergyHigh,
			Vibe:     []string{"fun", "celebratory", "energetic", "social"},
			Keywords: []string{"party", "friends", "celebration", "social"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Comedy", "Romance", "Drama", "Musical"},
			Tone:     ToneLight,
			Themes:   []string{"friendship", "community", "connection", "fun"},
			Keywords: []string{"fun", "social", "ensemble", "friendship"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Contemporary", "Humor", "Romance"},
			Themes:   []string{"friendship", "social", "community", "connection"},
			Pacing:   PacingModerate,
			Depth:    DepthLight,
			Keywords: []string{"friendship", "social", "relationships", "community"},
		},
		AvoidThemes: []string{"isolation", "antisocial", "lonely"},
		Strategy:    StrategyMatch,
	},
	"introverted": {
		Key:      "introverted",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"indie", "acoustic", "lo-fi", "ambient", "soft"},
			Energy:   EnergyLow,
			Vibe:     []string{"peaceful", "introspective", "gentle", "calm"},
			Keywords: []string{"alone time", "peaceful", "solitude", "quiet"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Documentary", "Animation", "Art House"},
			Tone:     ToneBalanced,
			Themes:   []string{"solitude", "reflection", "peace", "individual"},
			Keywords: []string{"quiet", "reflective", "contemplative", "peaceful"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Philosophy", "Poetry", "Memoir"},
			Themes:   []string{"solitude", "reflection", "introspection", "peace"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"introspective", "quiet", "reflective", "solitude"},
		},
		AvoidThemes: []string{"loud", "social pressure", "chaotic"},
		Strategy:    StrategyMatch,
	},
	"romantic": {
		Key:      "romantic",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"r&b", "soul", "love songs", "jazz", "acoustic"},
			Energy:   EnergyLow,
			Vibe:     []string{"romantic", "intimate", "tender", "warm"},
			Keywords: []string{"love", "romantic", "intimate", "passion"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Romance", "Drama", "Comedy"},
			Tone:     ToneLight,
			Themes:   []string{"love", "romance", "passion", "connection"},
			Keywords: []string{"romantic", "heartwarming", "sweet", "loving"},
		},
		Book: BookProfile{
			Genres:   []string{"Romance", "Fiction", "Poetry"},
			Themes:   []string{"love", "romance", "passion", "intimacy"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"romantic", "love", "passion", "heartwarming"},
		},
		AvoidThemes: []string{"heartbreak", "cynical", "bitter"},
		Strategy:    StrategyMatch,
	},
	"nostalgic": {
		Key:      "nostalgic",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"classic rock", "oldies", "80s", "90s", "retro"},
			Energy:   EnergyMedium,
			Vibe:     []string{"nostalgic", "bittersweet", "reflective", "warm"},
			Keywords: []string{"throwback", "memories", "nostalgia", "classic"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Comedy", "Family", "Animation"},
			Tone:     ToneBalanced,
			Themes:   []string{"memory", "past", "childhood", "coming of age"},
			Keywords: []string{"nostalgic", "sentimental", "memories", "classic"},
		},
		Book: BookProfile{
			Genres:   []string{"Memoir", "Historical Fiction", "Fiction", "Classic"},
			Themes:   []string{"memory", "past", "nostalgia", "time"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"nostalgic", "memories", "past", "reflective"},
		},
		AvoidThemes: []string{"futuristic", "modern", "cutting-edge"},
		Strategy:    StrategyMatch,
	},
	"homesick": {
		Key:      "homesick",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"folk", "acoustic", "country", "soft", "comforting"},
			Energy:   EnergyLow,
			Vibe:     []string{"comforting", "warm", "familiar", "gentle"},
			Keywords: []string{"home", "comfort", "family", "familiar"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Family", "Drama", "Animation", "Comedy"},
			Tone:     ToneLight,
			Themes:   []string{"family", "home", "belonging", "comfort"},
			Keywords: []string{"heartwarming", "family", "comforting", "home"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Memoir", "Family", "Contemporary"},
			Themes:   []string{"home", "family", "belonging", "roots"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"family", "home", "belonging", "comfort"},
		},
		AvoidThemes: []string{"displacement", "loss", "abandonment"},
		Strategy:    StrategyProcess,
	},
	"misunderstood": {
		Key:      "misunderstood",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"alternative", "indie", "emo", "rock", "emotional"},
			Energy:   EnergyMedium,
			Vibe:     []string{"emotional", "raw", "authentic", "expressive"},
			Keywords: []string{"misunderstood", "emotional", "authentic", "raw"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Biography", "Coming-of-Age"},
			Tone:     ToneSerious,
			Themes:   []string{"understanding", "acceptance", "identity", "expression"},
			Keywords: []string{"relatable", "authentic", "emotional", "validating"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Young Adult", "Memoir", "Psychology"},
			Themes:   []string{"understanding", "identity", "acceptance", "expression"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"relatable", "understanding", "identity", "validation"},
		},
		AvoidThemes: []string{"judgmental", "dismissive", "superficial"},
		Strategy:    StrategyProcess,
	},
	"betrayed": {
		Key:      "betrayed",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"emotional", "alternative", "rock", "raw", "powerful"},
			Energy:   EnergyMedium,
			Vibe:     []string{"intense", "emotional", "cathartic", "powerful"},
			Keywords: []string{"betrayal", "hurt", "anger", "healing"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Thriller"},
			Tone:     ToneDark,
			Themes:   []string{"betrayal", "recovery", "strength", "justice"},
			Keywords: []string{"intense", "emotional", "cathartic", "powerful"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Thriller", "Psychology", "Self-Help"},
			Themes:   []string{"betrayal", "trust", "healing", "recovery"},
			Pacing:   PacingModerate,
			Depth:    DepthDeep,
			Keywords: []string{"betrayal", "healing", "recovery", "trust"},
		},
		AvoidThemes: []string{"trust issues", "paranoia"},
		Strategy:    StrategyProcess,
	},
	"supported": {
		Key:      "supported",
		Category: CategorySocial,
		Music: MusicProfile{
			Genres:   []string{"uplifting", "soul", "gospel", "indie", "warm"},
			Energy:   EnergyMedium,
			Vibe:     []string{"warm", "uplifting", "comforting", "grateful"},
			Keywords: []string{"support", "gratitude", "love", "comfort"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Family", "Biography", "Comedy"},
			Tone:     ToneUplifting,
			Themes:   []string{"support", "community", "love", "gratitude"},
			Keywords: []string{"heartwarming", "uplifting", "supportive", "comforting"},
		},
		Book: BookProfile{
			Genres:   []string{"Memoir", "Fiction", "Self-Help", "Biography"},
			Themes:   []string{"support", "community", "gratitude", "connection"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"support", "community", "gratitude", "uplifting"},
		},
		AvoidThemes: []string{"betrayal", "isolation", "abandonment"},
		Strategy:    StrategyMatch,
	},

	// Existential / reflective.
	"contemplative": {
		Key:      "contemplative",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"ambient", "classical", "jazz", "instrumental", "meditative"},
			Energy:   EnergyLow,
			Vibe:     []string{"thoughtful", "deep", "peaceful", "reflective"},
			Keywords: []string{"contemplation", "reflection", "thought", "meditation"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Documentary", "Art House", "Foreign"},
			Tone:     ToneSerious,
			Themes:   []string{"reflection", "meaning", "depth", "contemplation"},
			Keywords: []string{"thought-provoking", "deep", "contemplative", "meaningful"},
		},
		Book: BookProfile{
			Genres:   []string{"Philosophy", "Literary Fiction", "Poetry", "Essays"},
			Themes:   []string{"contemplation", "meaning", "reflection", "depth"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"contemplative", "philosophical", "deep", "thoughtful"},
		},
		AvoidThemes: []string{"superficial", "action-heavy", "shallow"},
		Strategy:    StrategyMatch,
	},
	"philosophical": {
		Key:      "philosophical",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"classical", "ambient", "jazz", "experimental", "avant-garde"},
			Energy:   EnergyLow,
			Vibe:     []string{"intellectual", "deep", "complex", "thought-provoking"},
			Keywords: []string{"philosophical", "deep", "intellectual", "complex"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Science Fiction", "Documentary", "Art House"},
			Tone:     ToneSerious,
			Themes:   []string{"existence", "meaning", "philosophy", "consciousness"},
			Keywords: []string{"philosophical", "profound", "thought-provoking", "deep"},
		},
		Book: BookProfile{
			Genres:   []string{"Philosophy", "Science", "Psychology", "Literary Fiction"},
			Themes:   []string{"philosophy", "existence", "meaning", "consciousness"},
			Pacing:   PacingSlow,
			Depth:    DepthProfound,
			Keywords: []string{"philosophical", "deep", "meaning", "existence"},
		},
		AvoidThemes: []string{"simple", "escapist", "superficial"},
		Strategy:    StrategyMatch,
	},
	"curious": {
		Key:      "curious",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"world", "jazz", "experimental", "eclectic", "indie"},
			Energy:   EnergyMedium,
			Vibe:     []string{"interesting", "diverse", "exploratory", "engaging"},
			Keywords: []string{"discovery", "exploration", "learning", "diverse"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Documentary", "Science Fiction", "Mystery", "Adventure"},
			Tone:     ToneBalanced,
			Themes:   []string{"discovery", "learning", "exploration", "knowledge"},
			Keywords: []string{"fascinating", "educational", "intriguing", "discovery"},
		},
		Book: BookProfile{
			Genres:   []string{"Non-fiction", "Science", "History", "Biography"},
			Themes:   []string{"curiosity", "discovery", "learning", "knowledge"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"fascinating", "learning", "discovery", "educational"},
		},
		AvoidThemes: []string{"boring", "dry", "overly technical"},
		Strategy:    StrategyMatch,
	},
	"confused": {
		Key:      "confused",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"ambient", "chill", "soft", "calming", "clear"},
			Energy:   EnergyLow,
			Vibe:     []string{"calming", "clarifying", "gentle", "peaceful"},
			Keywords: []string{"clarity", "calm", "peaceful", "simple"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Documentary", "Biography", "Animation"},
			Tone:     ToneBalanced,
			Themes:   []string{"clarity", "understanding", "simplicity", "resolution"},
			Keywords: []string{"clear", "insightful", "understanding", "enlightening"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Philosophy", "Fiction", "Psychology"},
			Themes:   []string{"clarity", "understanding", "guidance", "insight"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"clarity", "guidance", "understanding", "insight"},
		},
		AvoidThemes: []string{"complex", "confusing", "ambiguous"},
		Strategy:    StrategyUplift,
	},
	"stuck": {
		Key:      "stuck",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"uplifting", "motivational", "rock", "indie", "inspiring"},
			Energy:   EnergyMedium,
			Vibe:     []string{"motivating", "empowering", "uplifting", "moving"},
			Keywords: []string{"breakthrough", "change", "motivation", "movement"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Biography", "Drama", "Documentary", "Sport"},
			Tone:     ToneUplifting,
			Themes:   []string{"breakthrough", "change", "transformation", "overcoming"},
			Keywords: []string{"inspiring", "transformative", "breakthrough", "motivating"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Biography", "Psychology", "Business"},
			Themes:   []string{"change", "breakthrough", "transformation", "progress"},
			Pacing:   PacingModerate,
			Depth:    DepthMedium,
			Keywords: []string{"breakthrough", "change", "transformation", "unstuck"},
		},
		AvoidThemes: []string{"stagnation", "hopeless", "trapped"},
		Strategy:    StrategyUplift,
	},
	"purposeful": {
		Key:      "purposeful",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"orchestral", "epic", "motivational", "inspiring", "powerful"},
			Energy:   EnergyHigh,
			Vibe:     []string{"powerful", "purposeful", "determined", "inspiring"},
			Keywords: []string{"purpose", "meaning", "mission", "drive"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Biography", "Drama", "Documentary", "History"},
			Tone:     ToneUplifting,
			Themes:   []string{"purpose", "meaning", "mission", "impact"},
			Keywords: []string{"purposeful", "meaningful", "inspiring", "impactful"},
		},
		Book: BookProfile{
			Genres:   []string{"Biography", "Self-Help", "Philosophy", "Business"},
			Themes:   []string{"purpose", "meaning", "mission", "legacy"},
			Pacing:   PacingModerate,
			Depth:    DepthDeep,
			Keywords: []string{"purpose", "meaningful", "mission", "impact"},
		},
		AvoidThemes: []string{"meaningless", "aimless", "empty"},
		Strategy:    StrategyMatch,
	},
	"empty": {
		Key:      "empty",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"ambient", "soft", "healing", "gentle", "hopeful"},
			Energy:   EnergyLow,
			Vibe:     []string{"gentle", "healing", "comforting", "filling"},
			Keywords: []string{"healing", "comfort", "hope", "gentle"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Animation", "Documentary", "Biography"},
			Tone:     ToneBalanced,
			Themes:   []string{"healing", "recovery", "hope", "meaning"},
			Keywords: []string{"healing", "meaningful", "hopeful", "restorative"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Philosophy", "Fiction", "Poetry"},
			Themes:   []string{"healing", "meaning", "recovery", "fulfillment"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"healing", "meaning", "fulfillment", "hope"},
		},
		AvoidThemes: []string{"nihilistic", "dark", "hopeless"},
		Strategy:    StrategyUplift,
	},
	"overwhelmed": {
		Key:      "overwhelmed",
		Category: CategoryExistential,
		Music: MusicProfile{
			Genres:   []string{"ambient", "meditation", "calm", "peaceful", "simple"},
			Energy:   EnergyVeryLow,
			Vibe:     []string{"calming", "simplifying", "peaceful", "grounding"},
			Keywords: []string{"calm", "simplicity", "peace", "grounding"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Animation", "Comedy", "Documentary", "Nature"},
			Tone:     ToneLight,
			Themes:   []string{"simplicity", "peace", "clarity", "calm"},
			Keywords: []string{"simple", "calming", "peaceful", "gentle"},
		},
		Book: BookProfile{
			Genres:   []string{"Self-Help", "Poetry", "Fiction", "Meditation"},
			Themes:   []string{"simplicity", "mindfulness", "calm", "balance"},
			Pacing:   PacingSlow,
			Depth:    DepthLight,
			Keywords: []string{"simplicity", "calm", "mindfulness", "peace"},
		},
		AvoidThemes: []string{"complex", "intense", "demanding", "chaotic"},
		Strategy:    StrategyUplift,
	},

	// Transitional / complex.
	"bittersweet": {
		Key:      "bittersweet",
		Category: CategoryComplex,
		Music: MusicProfile{
			Genres:   []string{"indie", "folk", "acoustic", "melancholic", "emotional"},
			Energy:   EnergyLow,
			Vibe:     []string{"bittersweet", "nostalgic", "emotional", "reflective"},
			Keywords: []string{"bittersweet", "nostalgic", "emotional", "poignant"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Romance", "Coming-of-Age"},
			Tone:     ToneBalanced,
			Themes:   []string{"bittersweet", "nostalgia", "change", "growth"},
			Keywords: []string{"bittersweet", "poignant", "moving", "emotional"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Literary Fiction", "Poetry", "Memoir"},
			Themes:   []string{"bittersweet", "change", "transition", "nostalgia"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"bittersweet", "poignant", "emotional", "moving"},
		},
		AvoidThemes: []string{"overly happy", "overly sad", "extreme"},
		Strategy:    StrategyMatch,
	},
	"numb": {
		Key:      "numb",
		Category: CategoryComplex,
		Music: MusicProfile{
			Genres:   []string{"ambient", "electronic", "post-rock", "atmospheric", "minimal"},
			Energy:   EnergyLow,
			Vibe:     []string{"atmospheric", "gentle", "awakening", "stirring"},
			Keywords: []string{"awakening", "gentle", "stirring", "emotional"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Art House", "Documentary"},
			Tone:     ToneSerious,
			Themes:   []string{"awakening", "feeling", "connection", "recovery"},
			Keywords: []string{"awakening", "stirring", "emotional", "profound"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Psychology", "Memoir", "Philosophy"},
			Themes:   []string{"awakening", "feeling", "recovery", "connection"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"awakening", "emotional", "recovery", "feeling"},
		},
		AvoidThemes: []string{"intense", "overwhelming", "harsh"},
		Strategy:    StrategyUplift,
	},
	"vengeful": {
		Key:      "vengeful",
		Category: CategoryComplex,
		Music: MusicProfile{
			Genres:   []string{"rock", "metal", "intense", "powerful", "aggressive"},
			Energy:   EnergyVeryHigh,
			Vibe:     []string{"powerful", "intense", "cathartic", "strong"},
			Keywords: []string{"power", "justice", "strength", "intense"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Action", "Thriller", "Drama"},
			Tone:     ToneDark,
			Themes:   []string{"justice", "empowerment", "strength", "overcoming"},
			Keywords: []string{"powerful", "intense", "justice", "cathartic"},
		},
		Book: BookProfile{
			Genres:   []string{"Thriller", "Fiction", "Psychology", "Self-Help"},
			Themes:   []string{"justice", "anger", "healing", "forgiveness"},
			Pacing:   PacingFast,
			Depth:    DepthMedium,
			Keywords: []string{"justice", "empowerment", "healing", "strength"},
		},
		AvoidThemes: []string{"weak", "passive", "forgiving too quickly"},
		Strategy:    StrategyChannel,
	},
	"rebellious": {
		Key:      "rebellious",
		Category: CategoryComplex,
		Music: MusicProfile{
			Genres:   []string{"punk", "rock", "alternative", "hip hop", "rebellious"},
			Energy:   EnergyVeryHigh,
			Vibe:     []string{"defiant", "powerful", "bold", "liberating"},
			Keywords: []string{"rebellion", "freedom", "defiance", "power"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Action", "Biography", "Thriller"},
			Tone:     ToneIntense,
			Themes:   []string{"rebellion", "freedom", "independence", "justice"},
			Keywords: []string{"rebellious", "defiant", "liberating", "powerful"},
		},
		Book: BookProfile{
			Genres:   []string{"Fiction", "Biography", "History", "Young Adult"},
			Themes:   []string{"rebellion", "freedom", "independence", "defiance"},
			Pacing:   PacingFast,
			Depth:    DepthMedium,
			Keywords: []string{"rebellion", "freedom", "defiance", "independence"},
		},
		AvoidThemes: []string{"conformity", "submission", "passive"},
		Strategy:    StrategyChannel,
	},
	"vulnerable": {
		Key:      "vulnerable",
		Category: CategoryComplex,
		Music: MusicProfile{
			Genres:   []string{"acoustic", "indie", "soft", "intimate", "emotional"},
			Energy:   EnergyLow,
			Vibe:     []string{"intimate", "gentle", "tender", "authentic"},
			Keywords: []string{"vulnerable", "honest", "intimate", "authentic"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Drama", "Romance", "Biography"},
			Tone:     ToneSerious,
			Themes:   []string{"vulnerability", "authenticity", "connection", "courage"},
			Keywords: []string{"honest", "intimate", "authentic", "tender"},
		},
		Book: BookProfile{
			Genres:   []string{"Memoir", "Fiction", "Poetry", "Self-Help"},
			Themes:   []string{"vulnerability", "authenticity", "courage", "openness"},
			Pacing:   PacingSlow,
			Depth:    DepthDeep,
			Keywords: []string{"vulnerable", "authentic", "honest", "courage"},
		},
		AvoidThemes: []string{"harsh", "judgmental", "cold"},
		Strategy:    StrategyProcess,
	},
	"bored": {
		Key:      "bored",
		Category: CategoryComplex,
		Music: MusicProfile{
			Genres:   []string{"eclectic", "diverse", "experimental", "interesting", "varied"},
			Energy:   EnergyMedium,
			Vibe:     []string{"interesting", "engaging", "stimulating", "diverse"},
			Keywords: []string{"interesting", "engaging", "diverse", "stimulating"},
		},
		Movie: MovieProfile{
			Genres:   []string{"Mystery", "Thriller", "Science Fiction", "Adventure"},
			Tone:     ToneBalanced,
			Themes:   []string{"intrigue", "mystery", "adventure", "discovery"},
			Keywords: []string{"engaging", "intriguing", "captivating", "exciting"},
		},
		Book: BookProfile{
			Genres:   []string{"Mystery", "Thriller", "Science Fiction", "Adventure"},
			Themes:   []string{"mystery", "intrigue", "adventure", "discovery"},
			Pacing:   PacingFast,
			Depth:    DepthMedium,
			Keywords: []string{"engaging", "page-turner", "intriguing", "captivating"},
		},
		AvoidThemes: []string{"boring", "slow", "predictable", "dull"},
		Strategy:    StrategyEscape,
	},
}
