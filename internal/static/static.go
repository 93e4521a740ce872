// Package static holds the hand-curated fallback content sets. These are
// data, not logic: the baseline served when a live source yields nothing,
// and the only source for kinds that have no live counterpart.
package static

import (
	"time"

	"github.com/pulsefeed/pulsefeed/internal/fetcher"
	"github.com/pulsefeed/pulsefeed/pkg/models"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func item(source models.Source, title, description, url string, date time.Time, granularity models.Granularity, category string, tags ...string) models.ContentItem {
	return models.ContentItem{
		ID:          models.ItemID(source, "", url, title, date),
		Title:       title,
		Description: description,
		URL:         url,
		Date:        date,
		Granularity: granularity,
		Source:      source,
		Category:    category,
		Tags:        tags,
	}
}

// Jobs is the curated job-board floor. Unlike outage fallbacks, these are
// always concatenated with whatever the live job feeds return.
func Jobs() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceJobs, "Research Engineer, Alignment", "Build evaluation harnesses for frontier model safety research.", "https://jobs.pulsefeed.dev/anthropic-research-engineer", month(2026, time.September), models.GranularityMonth, "Anthropic", "research", "safety"),
		item(models.SourceJobs, "ML Infrastructure Engineer", "Scale distributed training across multi-cluster GPU fleets.", "https://jobs.pulsefeed.dev/openai-ml-infra", month(2026, time.September), models.GranularityMonth, "OpenAI", "infrastructure"),
		item(models.SourceJobs, "Applied Scientist, Recommendations", "Ship ranking models that serve a billion daily requests.", "https://jobs.pulsefeed.dev/meta-applied-scientist", month(2026, time.August), models.GranularityMonth, "Meta", "ranking"),
		item(models.SourceJobs, "Developer Advocate, Gemini API", "Teach developers to build with multimodal model APIs.", "https://jobs.pulsefeed.dev/google-devrel", month(2026, time.August), models.GranularityMonth, "Google DeepMind", "devrel"),
		item(models.SourceJobs, "Staff Engineer, Inference Platform", "Own latency and throughput for production LLM serving.", "https://jobs.pulsefeed.dev/mistral-inference", month(2026, time.September), models.GranularityMonth, "Mistral AI", "inference"),
	}
}

// Learning is the evergreen learning-resource set.
func Learning() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceLearning, "Neural Networks: Zero to Hero", "Karpathy's from-scratch course on backprop, GPTs and tokenizers.", "https://karpathy.ai/zero-to-hero.html", month(2026, time.September), models.GranularityMonth, "Advanced", "course", "free"),
		item(models.SourceLearning, "Hugging Face NLP Course", "Transformers, datasets and fine-tuning with the HF ecosystem.", "https://huggingface.co/learn/nlp-course", month(2026, time.September), models.GranularityMonth, "Intermediate", "course", "free"),
		item(models.SourceLearning, "fast.ai Practical Deep Learning", "Top-down deep learning for coders, no math prerequisites.", "https://course.fast.ai", month(2026, time.August), models.GranularityMonth, "Beginner", "course", "free"),
		item(models.SourceLearning, "Prompt Engineering Guide", "Patterns, anti-patterns and evaluation for production prompts.", "https://www.promptingguide.ai", month(2026, time.September), models.GranularityMonth, "Beginner", "guide"),
	}
}

// Tools is the curated tool-directory floor; like Jobs it is always
// concatenated with live data.
func Tools() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceTools, "Cursor", "AI-first code editor with repo-wide context and agentic edits.", "https://cursor.com", month(2026, time.September), models.GranularityMonth, "Coding"),
		item(models.SourceTools, "Perplexity", "Answer engine with cited, up-to-date web research.", "https://perplexity.ai", month(2026, time.September), models.GranularityMonth, "Research"),
		item(models.SourceTools, "ElevenLabs", "Production-quality voice synthesis and dubbing.", "https://elevenlabs.io", month(2026, time.August), models.GranularityMonth, "Audio"),
		item(models.SourceTools, "Runway", "Video generation and editing suite for creative teams.", "https://runwayml.com", month(2026, time.August), models.GranularityMonth, "Video"),
		item(models.SourceTools, "LangSmith", "Tracing, evals and monitoring for LLM applications.", "https://smith.langchain.com", month(2026, time.September), models.GranularityMonth, "Observability"),
	}
}

// Timeline is the AI-history event set, always static.
func Timeline() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceTimeline, "Dartmouth workshop coins 'artificial intelligence'", "The 1956 summer workshop that named and launched the field.", "https://pulsefeed.dev/timeline/dartmouth", day(1956, time.July, 13), models.GranularityDay, "Origins"),
		item(models.SourceTimeline, "Deep Blue defeats Kasparov", "First match win by a computer over a reigning world chess champion.", "https://pulsefeed.dev/timeline/deep-blue", day(1997, time.May, 11), models.GranularityDay, "Milestones"),
		item(models.SourceTimeline, "AlexNet wins ImageNet", "The result that reignited deep learning.", "https://pulsefeed.dev/timeline/alexnet", day(2012, time.September, 30), models.GranularityDay, "Milestones"),
		item(models.SourceTimeline, "AlphaGo defeats Lee Sedol", "Move 37 and a 4-1 series win in Seoul.", "https://pulsefeed.dev/timeline/alphago", day(2016, time.March, 15), models.GranularityDay, "Milestones"),
		item(models.SourceTimeline, "ChatGPT launches", "The release that took LLMs mainstream in a single week.", "https://pulsefeed.dev/timeline/chatgpt", day(2022, time.November, 30), models.GranularityDay, "Milestones"),
	}
}

// Skills is the practical-skills track, always static.
func Skills() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceSkills, "Write evals before prompts", "A failing eval suite is the fastest way to iterate on prompts.", "https://pulsefeed.dev/skills/evals-first", month(2026, time.September), models.GranularityMonth, "Evaluation"),
		item(models.SourceSkills, "Chunking strategies for RAG", "Split by structure, not by token count, and measure retrieval hit rate.", "https://pulsefeed.dev/skills/rag-chunking", month(2026, time.September), models.GranularityMonth, "RAG"),
		item(models.SourceSkills, "Structured output without tears", "Schema-constrained decoding beats regex post-processing.", "https://pulsefeed.dev/skills/structured-output", month(2026, time.August), models.GranularityMonth, "Engineering"),
	}
}

// Decoded is the editorial explainer series, always static.
func Decoded() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceDecoded, "Mixture-of-experts, decoded", "Why sparse routing lets trillion-parameter models run on a budget.", "https://pulsefeed.dev/decoded/moe", month(2026, time.September), models.GranularityMonth, "Architecture"),
		item(models.SourceDecoded, "KV-cache, decoded", "The memory trick behind fast autoregressive inference.", "https://pulsefeed.dev/decoded/kv-cache", month(2026, time.August), models.GranularityMonth, "Inference"),
		item(models.SourceDecoded, "RLHF, decoded", "From preference data to reward models to aligned assistants.", "https://pulsefeed.dev/decoded/rlhf", month(2026, time.July), models.GranularityMonth, "Training"),
	}
}

// DeepMind is the research-lab spotlight series, always static.
func DeepMind() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceDeepMind, "AlphaFold and the protein folding problem", "How a 50-year grand challenge fell to deep learning.", "https://pulsefeed.dev/deepmind/alphafold", month(2026, time.September), models.GranularityMonth, "Science"),
		item(models.SourceDeepMind, "GraphCast and medium-range weather", "Ten-day forecasts in under a minute on a single TPU.", "https://pulsefeed.dev/deepmind/graphcast", month(2026, time.August), models.GranularityMonth, "Science"),
	}
}

// Robotics is the embodied-AI series, always static.
func Robotics() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceRobotics, "Vision-language-action models", "One transformer from camera pixels to motor commands.", "https://pulsefeed.dev/robotics/vla", month(2026, time.September), models.GranularityMonth, "Research"),
		item(models.SourceRobotics, "Sim-to-real transfer in 2026", "Domain randomization finally pays off for dexterous manipulation.", "https://pulsefeed.dev/robotics/sim-to-real", month(2026, time.August), models.GranularityMonth, "Research"),
	}
}

// Trending is the trending-topics set, always static.
func Trending() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceTrending, "Agentic coding workflows", "Multi-step tool-using agents move from demos to daily drivers.", "https://pulsefeed.dev/trending/agentic-coding", month(2026, time.September), models.GranularityMonth, "Advanced"),
		item(models.SourceTrending, "Small language models on-device", "Sub-4B models now handle summarization and routing locally.", "https://pulsefeed.dev/trending/slm-on-device", month(2026, time.September), models.GranularityMonth, "Intermediate"),
		item(models.SourceTrending, "Synthetic data flywheels", "Model-generated training data, filtered by stronger judges.", "https://pulsefeed.dev/trending/synthetic-data", month(2026, time.August), models.GranularityMonth, "Advanced"),
	}
}

// Agentic is the agent-ecosystem series, always static.
func Agentic() []models.ContentItem {
	return []models.ContentItem{
		item(models.SourceAgentic, "MCP servers in the wild", "A survey of production Model Context Protocol deployments.", "https://pulsefeed.dev/agentic/mcp-survey", month(2026, time.September), models.GranularityMonth, "Protocols"),
		item(models.SourceAgentic, "Sandboxing agent tool calls", "Why every serious agent runtime grew a permission layer.", "https://pulsefeed.dev/agentic/sandboxing", month(2026, time.August), models.GranularityMonth, "Safety"),
	}
}

// Leaderboard is the simulated ranking snapshot served when the live
// leaderboard call fails or is not configured.
func Leaderboard() fetcher.LeaderboardSnapshot {
	return fetcher.LeaderboardSnapshot{
		Updated: day(2026, time.September, 1),
		Models: []fetcher.ModelRank{
			{Name: "Claude Opus 4.1", Provider: "Anthropic", URL: "https://pulsefeed.dev/models/claude-opus-4-1", Score: 92.3},
			{Name: "GPT-5", Provider: "OpenAI", URL: "https://pulsefeed.dev/models/gpt-5", Score: 91.8},
			{Name: "Gemini 2.5 Pro", Provider: "Google DeepMind", URL: "https://pulsefeed.dev/models/gemini-2-5-pro", Score: 90.9},
			{Name: "Llama 4 Maverick", Provider: "Meta", URL: "https://pulsefeed.dev/models/llama-4-maverick", Score: 88.4},
			{Name: "DeepSeek-V3.2", Provider: "DeepSeek", URL: "https://pulsefeed.dev/models/deepseek-v3-2", Score: 87.9},
		},
	}
}

// ByKind maps each static-only kind to its content set. Kinds with live
// paths (news, video, research) and loader-backed kinds (blog) are absent.
func ByKind() map[models.Source][]models.ContentItem {
	return map[models.Source][]models.ContentItem{
		models.SourceJobs:     Jobs(),
		models.SourceLearning: Learning(),
		models.SourceTools:    Tools(),
		models.SourceTimeline: Timeline(),
		models.SourceSkills:   Skills(),
		models.SourceDecoded:  Decoded(),
		models.SourceDeepMind: DeepMind(),
		models.SourceRobotics: Robotics(),
		models.SourceTrending: Trending(),
		models.SourceAgentic:  Agentic(),
	}
}
