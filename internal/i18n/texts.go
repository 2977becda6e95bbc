package i18n

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "AI Image Generator",
		KeyMenuItem:          "AI Image Generator",
		KeyMenuItemHint:      "Opens the AI Image Generator",
		KeyToolsMenu:         "Tools",
		KeyPromptPlaceholder: "Enter your imagination here...",
		KeyClear:             "Clear",
		KeyAbout:             "About",
		KeyGenerate:          "Generate Image",
		KeyClose:             "Close",
		KeyWarning:           "Warning",
		KeyError:             "Error",
		KeySuccess:           "Success",
		KeyEnterValidPrompt:  "Please enter a valid description.",
		KeyNoValidPrompt:     "No valid description entered.",
		KeyInputCleared:      "Input cleared.",
		KeyGenerating:        "Generating image, please wait.",
		KeyGenerated:         "Image generated successfully.",
		KeyGenerationFailed:  "Image generation failed.",
		KeyCannotClose:       "Cannot close while generating image.",
		KeyWaitForGeneration: "Please wait for the image generation to complete.",
		KeyPleaseWait:        "Please Wait...",
		KeyAIGenerating:      "AI is generating...",
		KeyGeneratedImage:    "Generated Image",
		KeyResultHeading:     "Here is your described image generated with AI...",
		KeyDownloadImage:     "Download Image",
		KeyCopyImage:         "Copy Image",
		KeyImageCopied:       "Image copied to clipboard.",
		KeySaveImage:         "Save Image",
		KeyFileType:          "File type",
		KeyImageSavedAs:      "Image saved as {}",
		KeyShowInFolder:      "Show in folder",
		KeyErrorSaving:       "Error saving image: {}",
		KeyFailedToSave:      "Failed to save image.",
		KeyNoImageToDownload: "No image to download.",
		KeyUnsupportedFormat: "Unsupported file format.",
		KeyAboutTitle:        "About the Add-on",
		KeyAboutText: "AI Image Generator, developed by Sujan Rai at Team of Tech Visionary.\n" +
			"Join my Telegram channel for accessible and unique resources.\n" +
			"Visit my website to browse very useful and powerful tutorials on the web.",
		KeyNoThanks:          "No Thanks",
		KeyJoinTelegram:      "Join Telegram",
		KeyVisitWebsite:      "Visit Website",
		KeyLanguage:          "Language",
		KeyNext:              "Next",
		KeyCancel:            "Cancel",
		KeyHotkeyUnavailable: "Global shortcut {} is unavailable: {}",
		KeyOpenGenerator:     "Open Generator",
		KeyLauncherHint:      "Press {} or use Tools > AI Image Generator to describe an image.",
		KeyStatusReady:       "Ready.",
		KeySettings:          "Settings",
		KeySaveDirectory:     "Save directory",
		KeyDefaultFormat:     "Default file type",
		KeyShowFolderOnSave:  "Show folder after saving",
		KeyBrowse:            "Browse",
		KeySave:              "Save",
		KeySettingsSaved:     "Settings saved.",
		KeyCopyFailed:        "Could not copy image: {}",
		KeyGenerationError:   "Error generating image: {}",
		KeyWorkerUnavailable: "the image worker is unavailable",
		KeyUnknownError:      "unknown error",
		KeyOpenImage:         "Open image",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "ИИ-генератор изображений",
		KeyMenuItem:          "ИИ-генератор изображений",
		KeyMenuItemHint:      "Открывает ИИ-генератор изображений",
		KeyToolsMenu:         "Инструменты",
		KeyPromptPlaceholder: "Опишите, что вы представляете...",
		KeyClear:             "Очистить",
		KeyAbout:             "О программе",
		KeyGenerate:          "Создать изображение",
		KeyClose:             "Закрыть",
		KeyWarning:           "Предупреждение",
		KeyError:             "Ошибка",
		KeySuccess:           "Готово",
		KeyEnterValidPrompt:  "Пожалуйста, введите корректное описание.",
		KeyNoValidPrompt:     "Описание не введено.",
		KeyInputCleared:      "Поле ввода очищено.",
		KeyGenerating:        "Создание изображения, пожалуйста, подождите.",
		KeyGenerated:         "Изображение успешно создано.",
		KeyGenerationFailed:  "Не удалось создать изображение.",
		KeyCannotClose:       "Нельзя закрыть во время создания изображения.",
		KeyWaitForGeneration: "Дождитесь завершения создания изображения.",
		KeyPleaseWait:        "Пожалуйста, подождите...",
		KeyAIGenerating:      "ИИ создаёт изображение...",
		KeyGeneratedImage:    "Созданное изображение",
		KeyResultHeading:     "Вот изображение по вашему описанию, созданное ИИ...",
		KeyDownloadImage:     "Скачать изображение",
		KeyCopyImage:         "Копировать изображение",
		KeyImageCopied:       "Изображение скопировано в буфер обмена.",
		KeySaveImage:         "Сохранить изображение",
		KeyFileType:          "Тип файла",
		KeyImageSavedAs:      "Изображение сохранено как {}",
		KeyShowInFolder:      "Показать в папке",
		KeyErrorSaving:       "Ошибка сохранения изображения: {}",
		KeyFailedToSave:      "Не удалось сохранить изображение.",
		KeyNoImageToDownload: "Нет изображения для сохранения.",
		KeyUnsupportedFormat: "Неподдерживаемый формат файла.",
		KeyAboutTitle:        "О дополнении",
		KeyAboutText: "ИИ-генератор изображений, разработчик Sujan Rai, команда Tech Visionary.\n" +
			"Присоединяйтесь к Telegram-каналу с доступными и уникальными материалами.\n" +
			"Посетите сайт с полезными руководствами.",
		KeyNoThanks:          "Нет, спасибо",
		KeyJoinTelegram:      "Telegram-канал",
		KeyVisitWebsite:      "Посетить сайт",
		KeyLanguage:          "Язык",
		KeyNext:              "Далее",
		KeyCancel:            "Отмена",
		KeyHotkeyUnavailable: "Глобальное сочетание {} недоступно: {}",
		KeyOpenGenerator:     "Открыть генератор",
		KeyLauncherHint:      "Нажмите {} или выберите Инструменты > ИИ-генератор изображений, чтобы описать изображение.",
		KeyStatusReady:       "Готово.",
		KeySettings:          "Настройки",
		KeySaveDirectory:     "Папка сохранения",
		KeyDefaultFormat:     "Тип файла по умолчанию",
		KeyShowFolderOnSave:  "Показывать папку после сохранения",
		KeyBrowse:            "Обзор",
		KeySave:              "Сохранить",
		KeySettingsSaved:     "Настройки сохранены.",
		KeyCopyFailed:        "Не удалось скопировать изображение: {}",
		KeyGenerationError:   "Ошибка при создании изображения: {}",
		KeyWorkerUnavailable: "обработчик изображений недоступен",
		KeyUnknownError:      "неизвестная ошибка",
		KeyOpenImage:         "Открыть изображение",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerador de Imagens IA",
		KeyMenuItem:          "Gerador de Imagens IA",
		KeyMenuItemHint:      "Abre o Gerador de Imagens IA",
		KeyToolsMenu:         "Ferramentas",
		KeyPromptPlaceholder: "Descreva a sua imaginação aqui...",
		KeyClear:             "Limpar",
		KeyAbout:             "Sobre",
		KeyGenerate:          "Gerar Imagem",
		KeyClose:             "Fechar",
		KeyWarning:           "Aviso",
		KeyError:             "Erro",
		KeySuccess:           "Sucesso",
		KeyEnterValidPrompt:  "Introduza uma descrição válida.",
		KeyNoValidPrompt:     "Nenhuma descrição válida introduzida.",
		KeyInputCleared:      "Entrada limpa.",
		KeyGenerating:        "A gerar imagem, aguarde.",
		KeyGenerated:         "Imagem gerada com sucesso.",
		KeyGenerationFailed:  "Falha ao gerar a imagem.",
		KeyCannotClose:       "Não é possível fechar enquanto a imagem é gerada.",
		KeyWaitForGeneration: "Aguarde a conclusão da geração da imagem.",
		KeyPleaseWait:        "Aguarde...",
		KeyAIGenerating:      "A IA está a gerar...",
		KeyGeneratedImage:    "Imagem Gerada",
		KeyResultHeading:     "Aqui está a imagem descrita, gerada com IA...",
		KeyDownloadImage:     "Transferir Imagem",
		KeyCopyImage:         "Copiar Imagem",
		KeyImageCopied:       "Imagem copiada para a área de transferência.",
		KeySaveImage:         "Guardar Imagem",
		KeyFileType:          "Tipo de ficheiro",
		KeyImageSavedAs:      "Imagem guardada como {}",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyErrorSaving:       "Erro ao guardar a imagem: {}",
		KeyFailedToSave:      "Falha ao guardar a imagem.",
		KeyNoImageToDownload: "Nenhuma imagem para transferir.",
		KeyUnsupportedFormat: "Formato de ficheiro não suportado.",
		KeyAboutTitle:        "Sobre o Extra",
		KeyAboutText: "Gerador de Imagens IA, desenvolvido por Sujan Rai da equipa Tech Visionary.\n" +
			"Junte-se ao canal de Telegram para recursos acessíveis e únicos.\n" +
			"Visite o site para tutoriais úteis.",
		KeyNoThanks:          "Não, obrigado",
		KeyJoinTelegram:      "Entrar no Telegram",
		KeyVisitWebsite:      "Visitar Site",
		KeyLanguage:          "Idioma",
		KeyNext:              "Seguinte",
		KeyCancel:            "Cancelar",
		KeyHotkeyUnavailable: "O atalho global {} não está disponível: {}",
		KeyOpenGenerator:     "Abrir Gerador",
		KeyLauncherHint:      "Prima {} ou use Ferramentas > Gerador de Imagens IA para descrever uma imagem.",
		KeyStatusReady:       "Pronto.",
		KeySettings:          "Definições",
		KeySaveDirectory:     "Pasta de gravação",
		KeyDefaultFormat:     "Tipo de ficheiro predefinido",
		KeyShowFolderOnSave:  "Mostrar pasta após guardar",
		KeyBrowse:            "Procurar",
		KeySave:              "Guardar",
		KeySettingsSaved:     "Definições guardadas.",
		KeyCopyFailed:        "Não foi possível copiar a imagem: {}",
		KeyGenerationError:   "Erro ao gerar a imagem: {}",
		KeyWorkerUnavailable: "o processador de imagens não está disponível",
		KeyUnknownError:      "erro desconhecido",
		KeyOpenImage:         "Abrir imagem",
	}
}
