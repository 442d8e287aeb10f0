package mood

// similarities maps each taxonomy mood to an ordered list of related
// moods. Entries may name moods outside the taxonomy ("exhausted",
// "wistful"); those are descriptive neighbors, not lookup keys.
var similarities = map[string][]string{
	// Positive emotions.
	"happy":     {"excited", "playful", "content", "grateful"},
	"excited":   {"happy", "energetic", "playful", "hyper"},
	"grateful":  {"happy", "content", "peaceful", "loving"},
	"peaceful":  {"calm", "content", "mellow", "drowsy"},
	"confident": {"proud", "motivated", "purposeful", "empowered"},
	"inspired":  {"motivated", "curious", "purposeful", "excited"},
	"playful":   {"happy", "excited", "social", "energetic"},
	"content":   {"happy", "peaceful", "grateful", "calm"},
	"loving":    {"romantic", "grateful", "warm", "affectionate"},
	"proud":     {"confident", "happy", "accomplished", "motivated"},

	// Negative emotions.
	"sad":          {"lonely", "heartbroken", "disappointed", "empty"},
	"anxious":      {"stressed", "afraid", "overwhelmed", "restless"},
	"stressed":     {"anxious", "overwhelmed", "burnt_out", "tired"},
	"angry":        {"frustrated", "vengeful", "betrayed", "rebellious"},
	"lonely":       {"sad", "homesick", "isolated", "misunderstood"},
	"heartbroken":  {"sad", "betrayed", "disappointed", "empty"},
	"disappointed": {"sad", "hopeless", "let_down", "discouraged"},
	"guilty":       {"ashamed", "regretful", "embarrassed", "remorseful"},
	"jealous":      {"insecure", "envious", "angry", "inadequate"},
	"embarrassed":  {"ashamed", "self-conscious", "awkward", "guilty"},
	"afraid":       {"anxious", "scared", "worried", "panicked"},
	"hopeless":     {"empty", "defeated", "sad", "despair"},

	// Energy states.
	"energetic": {"excited", "hyper", "motivated", "restless"},
	"tired":     {"exhausted", "burnt_out", "sluggish", "drowsy"},
	"restless":  {"anxious", "hyper", "bored", "antsy"},
	"sluggish":  {"tired", "unmotivated", "low_energy", "mellow"},
	"hyper":     {"excited", "energetic", "overstimulated", "restless"},
	"burnt_out": {"tired", "exhausted", "stressed", "depleted"},
	"mellow":    {"calm", "relaxed", "peaceful", "content"},
	"drowsy":    {"tired", "sleepy", "calm", "peaceful"},

	// Social and relational.
	"social":        {"playful", "happy", "outgoing", "friendly"},
	"introverted":   {"contemplative", "peaceful", "alone", "reflective"},
	"romantic":      {"loving", "affectionate", "passionate", "tender"},
	"nostalgic":     {"bittersweet", "reflective", "sentimental", "wistful"},
	"homesick":      {"nostalgic", "lonely", "longing", "missing"},
	"misunderstood": {"lonely", "frustrated", "isolated", "unheard"},
	"betrayed":      {"hurt", "angry", "heartbroken", "vengeful"},
	"supported":     {"grateful", "loved", "secure", "comforted"},

	// Existential and reflective.
	"contemplative": {"introspective", "thoughtful", "philosophical", "reflective"},
	"philosophical": {"contemplative", "curious", "deep", "questioning"},
	"curious":       {"interested", "engaged", "exploring", "learning"},
	"confused":      {"uncertain", "lost", "overwhelmed", "unclear"},
	"stuck":         {"frustrated", "stagnant", "trapped", "blocked"},
	"purposeful":    {"motivated", "driven", "focused", "meaningful"},
	"empty":         {"numb", "hollow", "sad", "unfulfilled"},
	"overwhelmed":   {"stressed", "anxious", "drowning", "too_much"},

	// Transitional and complex.
	"bittersweet": {"nostalgic", "mixed", "poignant", "emotional"},
	"numb":        {"empty", "disconnected", "detached", "apathetic"},
	"vengeful":    {"angry", "betrayed", "seeking_justice", "hurt"},
	"rebellious":  {"defiant", "independent", "free", "bold"},
	"vulnerable":  {"exposed", "sensitive", "open", "raw"},
	"bored":       {"understimulated", "restless", "need_engagement", "uninterested"},
}

// opposites maps a subset of moods to their uplift target. Values may
// also fall outside the taxonomy ("relaxed", "flowing").
var opposites = map[string]string{
	"sad":         "happy",
	"angry":       "calm",
	"anxious":     "peaceful",
	"stressed":    "relaxed",
	"tired":       "energetic",
	"lonely":      "social",
	"hopeless":    "inspired",
	"confused":    "clear",
	"stuck":       "flowing",
	"empty":       "fulfilled",
	"bored":       "engaged",
	"sluggish":    "energetic",
	"overwhelmed": "calm",
	"numb":        "feeling",
	"afraid":      "confident",
}
